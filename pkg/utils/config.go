package utils

import "github.com/spf13/viper"

//SetDefaults registers a default for every configuration key, so the server runs with a partial (or no) config file
func SetDefaults() {
	viper.SetDefault("http.port", "8080")
	viper.SetDefault("frontend.static-files-path", "./client/")
	viper.SetDefault("video.prod_format", "mp4")
	viper.SetDefault("detector.script", "./detector/detect.py")

	viper.SetDefault("directory.root", "./data")
	viper.SetDefault("directory.source", "./data/uploads")
	viper.SetDefault("directory.ready", "./data/ready")
	viper.SetDefault("directory.temp", "./data/tmp")
	viper.SetDefault("directory.stubs", "./data/stubs")
	viper.SetDefault("directory.reports", "./data/reports")

	viper.SetDefault("possession.proximity_threshold", 50.0)
	viper.SetDefault("possession.min_frames", 11)
	viper.SetDefault("possession.containment_threshold", 0.8)

	viper.SetDefault("team.cache_reset_frames", 50)
	viper.SetDefault("ball.max_step", 25.0)

	//0 means the frame rate of the analyzed video
	viper.SetDefault("kinematics.fps", 0.0)

	viper.SetDefault("court.width", 300)
	viper.SetDefault("court.height", 161)
	viper.SetDefault("court.width_meters", 28.0)
	viper.SetDefault("court.height_meters", 15.0)
	viper.SetDefault("court.image", "")
}
