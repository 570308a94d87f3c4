package api

import (
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"path"

	"github.com/chenBenjamin97/court-analytics/pkg/report"
	"github.com/chenBenjamin97/court-analytics/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

//Analyzer runs the analysis of an uploaded video, given its file name inside the source directory
type Analyzer func(srcVideoName string) error

//NewRouter builds the http server's routes, analyze is started in its own goroutine for every uploaded video
func NewRouter(analyze Analyzer) *gin.Engine {
	r := gin.Default()

	//serve html pages to client
	r.Static("/client", viper.GetString("frontend.static-files-path"))
	r.StaticFile("/", viper.GetString("frontend.static-files-path")+"home_page/dist/index.html")

	apiRoutes := r.Group("/api")

	apiRoutes.GET("/ReadyVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.ready")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/UserUploadsVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/Play", func(ctx *gin.Context) {
		videoName := ctx.Query("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		analyzed := ctx.Query("analyzed")
		if analyzed != "true" && analyzed != "false" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		if analyzed == "true" {
			serveFile(ctx, path.Join(viper.GetString("directory.ready"), utils.BaseName(videoName)+"."+viper.GetString("video.prod_format")), "video/mp4")
			return
		}

		//uploads keep their original name and container
		srcFilePath := path.Join(viper.GetString("directory.source"), path.Base(videoName))
		serveFile(ctx, srcFilePath, mime.TypeByExtension(path.Ext(srcFilePath)))
	})

	apiRoutes.GET("/Report", func(ctx *gin.Context) {
		videoName := ctx.Query("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		serveFile(ctx, path.Join(viper.GetString("directory.reports"), utils.BaseName(videoName), utils.ControlChartName), "image/png")
	})

	apiRoutes.GET("/Summary", func(ctx *gin.Context) {
		videoName := ctx.Query("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		summary, err := report.LoadSummary(path.Join(viper.GetString("directory.reports"), utils.BaseName(videoName), utils.SummaryFileName))
		if err != nil {
			if os.IsNotExist(err) {
				ctx.Status(http.StatusNotFound)
			} else {
				log.Printf("api/Summary: Error, got '%v'", err)
				ctx.Status(http.StatusInternalServerError)
			}
			return
		}

		ctx.JSON(http.StatusOK, summary)
	})

	apiRoutes.POST("/Upload", func(ctx *gin.Context) {
		file, fHeader, err := ctx.Request.FormFile("video")
		if err != nil {
			ctx.Status(http.StatusBadRequest)
			return
		}
		defer file.Close()

		fileName := path.Base(fHeader.Filename)
		if !utils.IsVideo(fileName) {
			ctx.Status(http.StatusUnsupportedMediaType)
			return
		}

		if existNames, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		} else if utils.BaseNameTaken(fileName, existNames) { //outputs and stubs are keyed by base name
			ctx.Status(http.StatusNotAcceptable)
			return
		}

		log.Printf("api/Upload: Recived new file: name - '%s', size - %v Bytes", fileName, fHeader.Size)

		fileBytes, err := io.ReadAll(file)
		if err != nil {
			log.Printf("api/Upload: Could not read request's body, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		srcFilePath := path.Join(viper.GetString("directory.source"), fileName)
		if err = os.WriteFile(srcFilePath, fileBytes, 0444); err != nil {
			log.Printf("api/Upload: Could not write '%s' file, got '%v'", srcFilePath, err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		go func() {
			if err := analyze(fileName); err != nil {
				log.Printf("api/Upload: Error analyzing '%s', got '%v'", fileName, err)
			}
		}()

		ctx.Status(http.StatusAccepted)
	})

	return r
}

//serveFile writes the file at filePath with given content type, or a 404 when it does not exist
func serveFile(ctx *gin.Context, filePath, contentType string) {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			ctx.Status(http.StatusNotFound)
		} else {
			ctx.Status(http.StatusInternalServerError)
		}
		return
	}

	if contentType != "" {
		ctx.Header("Content-Type", contentType)
	}
	http.ServeFile(ctx.Writer, ctx.Request, filePath)
}
