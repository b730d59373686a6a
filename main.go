package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-cms/backend/api/handler"
	"portfolio-cms/backend/api/middleware"
	"portfolio-cms/backend/api/route"
	"portfolio-cms/backend/common"
	"portfolio-cms/backend/store"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.SysLog("Portfolio CMS " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := common.InitConfig(); err != nil {
		common.FatalLog(err)
	}

	// First boot creates the default content document and admin account.
	userStore := store.NewUserStore(common.DataDir)
	if err := userStore.Initialize(); err != nil {
		common.FatalLog(err)
	}
	contentStore := store.NewContentStore(common.DataDir)
	if err := contentStore.Initialize(); err != nil {
		common.FatalLog(err)
	}
	uploadStore := store.NewUploadStore(common.UploadDir)
	if err := uploadStore.Initialize(); err != nil {
		common.FatalLog(err)
	}

	server := gin.Default()
	server.Use(middleware.CORS())
	if common.EnableGzip {
		server.Use(middleware.GzipEncodeMiddleware())
	}
	server.MaxMultipartMemory = common.MaxUploadSize

	route.SetRouter(server,
		handler.NewAuthHandler(userStore),
		handler.NewContentHandler(contentStore),
		handler.NewUploadHandler(uploadStore),
	)

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}
