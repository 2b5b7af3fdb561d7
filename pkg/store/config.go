package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the roster database and supplies the option sets the form
// offers. The option sets are a presentation concern: the validator never
// re-enumerates them.
type Config interface {
	BasePath() string
	Programmes() []string
	Years() []string
	Interests() []string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.roster.db")
	viper.SetDefault("programmes", []string{"CS", "SE", "IT", "DS", "CE"})
	viper.SetDefault("years", []string{"1", "2", "3", "4"})
	viper.SetDefault("interests", []string{"art", "music", "sports", "coding", "robotics"})
	viper.SetConfigName(".roster") // .yaml is implicit
	viper.SetEnvPrefix("ROSTER")
	viper.AutomaticEnv()

	if override := os.Getenv("ROSTER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:          path,
		ProgrammeList: viper.GetStringSlice("programmes"),
		YearList:      viper.GetStringSlice("years"),
		InterestList:  viper.GetStringSlice("interests"),
	}, nil
}

type fileConfig struct {
	Path          string   `json:"path"`
	ProgrammeList []string `json:"programmes"`
	YearList      []string `json:"years"`
	InterestList  []string `json:"interests"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Programmes() []string {
	return f.ProgrammeList
}

func (f *fileConfig) Years() []string {
	return f.YearList
}

func (f *fileConfig) Interests() []string {
	return f.InterestList
}
