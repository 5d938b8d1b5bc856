package api

import (
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/chenBenjamin97/snooker-tracker/pkg/settings"
	"github.com/chenBenjamin97/snooker-tracker/pkg/utils"
	"github.com/chenBenjamin97/snooker-tracker/pkg/video"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

func SetRouter(colourSettings *settings.ColourDetection, ballSettings *settings.BallDetection) *gin.Engine {
	r := gin.Default()

	//serve html pages to client
	if staticPath := viper.GetString("frontend.static-files-path"); staticPath != "" {
		r.Static("/client", staticPath)
	}

	apiRoutes := r.Group("/api")

	apiRoutes.GET("/ReadyVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.ready")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/SourceVideosNames", func(ctx *gin.Context) {
		if names, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
		} else {
			ctx.JSON(http.StatusOK, names)
		}
	})

	apiRoutes.GET("/Play", func(ctx *gin.Context) {
		videoName := ctx.Request.URL.Query().Get("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		analyzed := ctx.Request.URL.Query().Get("analyzed")
		if analyzed != "true" && analyzed != "false" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		var videoPath string
		if analyzed == "true" {
			videoPath = path.Join(viper.GetString("directory.ready"), videoName+"."+viper.GetString("video.prod_format"))
		} else {
			videoPath = path.Join(viper.GetString("directory.source"), videoName+"."+viper.GetString("video.prod_format"))
		}

		if _, err := os.Stat(videoPath); err != nil {
			if os.IsNotExist(err) {
				ctx.Status(http.StatusNotFound)
				return
			} else {
				ctx.Status(http.StatusInternalServerError)
				return
			}
		}

		ctx.Header("Content-Type", "video/mp4")
		http.ServeFile(ctx.Writer, ctx.Request, videoPath)
	})

	apiRoutes.POST("/Upload", func(ctx *gin.Context) {
		file, fHeader, err := ctx.Request.FormFile("video")
		if err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		}

		if existNames, err := utils.ListDir(viper.GetString("directory.source")); err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		} else {
			if utils.InSlice(fHeader.Filename, existNames) {
				ctx.Status(http.StatusNotAcceptable)
				return
			}
		}

		defer file.Close()
		log.Printf("api/Upload: Recived new file: name - '%s', size - %v Bytes", fHeader.Filename, fHeader.Size)

		fileBytes, err := ioutil.ReadAll(file)
		if err != nil {
			log.Printf("api/Upload: Could not read request's body, got '%v'", err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		srcFilePath := path.Join(viper.GetString("directory.source"), fHeader.Filename)

		if err = ioutil.WriteFile(srcFilePath, fileBytes, 0444); err != nil {
			log.Printf("api/Upload: Could not write '%s' file, got '%v'", srcFilePath, err)
			ctx.Status(http.StatusInternalServerError)
			return
		}

		jobID := uuid.New().String()
		log.Printf("api/Upload: Starting analysis job '%s' for '%s'", jobID, fHeader.Filename)
		go video.Analyze(fHeader.Filename, colourSettings, ballSettings)

		ctx.JSON(http.StatusOK, gin.H{"job": jobID})
	})

	apiRoutes.POST("/Analyze", func(ctx *gin.Context) {
		videoName := ctx.Request.URL.Query().Get("name")
		if videoName == "" {
			ctx.Status(http.StatusNotAcceptable) //missing url parameter
			return
		}

		if _, err := os.Stat(path.Join(viper.GetString("directory.source"), videoName)); err != nil {
			if os.IsNotExist(err) {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusInternalServerError)
			return
		}

		jobID := uuid.New().String()
		log.Printf("api/Analyze: Starting analysis job '%s' for '%s'", jobID, videoName)
		go video.Analyze(videoName, colourSettings, ballSettings)

		ctx.JSON(http.StatusOK, gin.H{"job": jobID})
	})

	apiRoutes.GET("/Settings/BallDetection", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, ballSettings.Params())
	})

	//updating detection settings notifies every subscribed tracker, which
	//rebuilds its blob detector with the new parameters
	apiRoutes.PUT("/Settings/BallDetection", func(ctx *gin.Context) {
		var params settings.BallParams
		if err := ctx.BindJSON(&params); err != nil {
			ctx.Status(http.StatusBadRequest)
			return
		}

		ballSettings.Update(params)
		ctx.JSON(http.StatusOK, ballSettings.Params())
	})

	apiRoutes.GET("/Settings/Colours", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, colourSettings.Colours())
	})

	apiRoutes.PUT("/Settings/Colours/:name", func(ctx *gin.Context) {
		var setting settings.ColourSetting
		if err := ctx.BindJSON(&setting); err != nil {
			ctx.Status(http.StatusBadRequest)
			return
		}

		if err := colourSettings.SetColour(ctx.Param("name"), setting); err != nil {
			ctx.Status(http.StatusNotFound)
			return
		}

		ctx.JSON(http.StatusOK, colourSettings.Colours())
	})

	return r
}
