package main

import (
	"errors"
	"log"

	"github.com/chenBenjamin97/court-analytics/pkg/api"
	"github.com/chenBenjamin97/court-analytics/pkg/utils"
	"github.com/chenBenjamin97/court-analytics/pkg/video"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	pflag.String("config", "", "path to a config file, default is ./config.yaml")
	pflag.String("analyze", "", "analyze a single video from the source directory and exit instead of serving http")
	pflag.String("port", "", "http port, overrides 'http.port'")
	pflag.Parse()

	utils.SetDefaults()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatalf("Error: Could not bind flags, got '%v'", err)
	}
	if err := viper.BindPFlag("http.port", pflag.Lookup("port")); err != nil {
		log.Fatalf("Error: Could not bind flags, got '%v'", err)
	}

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Error: Could not read config file, got '%v'", err)
		}
		log.Printf("No config file found, running with defaults")
	}

	//create missing directories from config file
	for _, key := range utils.DirectoryKeys {
		if err := utils.EnsureDir(viper.GetString(key)); err != nil {
			log.Printf("Error Creating '%s' directory, got '%v'", viper.GetString(key), err)
		}
	}

	if viper.GetString("video.prod_format") == "" || viper.GetString("detector.script") == "" || viper.GetString("frontend.static-files-path") == "" {
		log.Fatalf("Error: Missing critical configurations")
	}

	if videoName := viper.GetString("analyze"); videoName != "" {
		if err := video.Tag(videoName); err != nil {
			log.Fatalf("Error: Got '%v'", err)
		}
		return
	}

	r := api.NewRouter(video.Tag)
	if err := r.Run(":" + viper.GetString("http.port")); err != nil {
		log.Fatalf("Error: Got '%v'", err)
	}
}
