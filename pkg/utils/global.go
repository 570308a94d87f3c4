package utils

//DirectoryKeys are the configuration keys of every directory the server reads or writes, created at startup
var DirectoryKeys = []string{
	"directory.root",
	"directory.source",
	"directory.ready",
	"directory.temp",
	"directory.stubs",
	"directory.reports",
}

//VideoExtensions are the file extensions accepted for upload
var VideoExtensions = []string{".mp4", ".avi", ".mov", ".mkv"}

//DetectionsStubName is the file name detector output is cached under, inside the video's stubs directory
const DetectionsStubName = "detections.json"

//SummaryFileName is the file name of a video's summary inside the reports directory
const SummaryFileName = "summary.json"

//ControlChartName is the file name of a video's ball control chart inside the reports directory
const ControlChartName = "control.png"
