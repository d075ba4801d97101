package main

import (
	"log"

	"github.com/techwatch/communitywatch/config"
	"github.com/techwatch/communitywatch/db"
	"github.com/techwatch/communitywatch/server"
	"github.com/techwatch/communitywatch/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	reportRepo := db.NewReportRepo(gormDB)
	likeRepo := db.NewLikeRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)

	mediaService := services.NewMediaService(conf)
	reportService := services.NewReportService(reportRepo, likeRepo, commentRepo, mediaService, conf)
	likeService := services.NewLikeService(likeRepo, conf)
	commentService := services.NewCommentService(commentRepo, conf)

	s := &server.Server{
		Config:            conf,
		ReportRepository:  reportRepo,
		LikeRepository:    likeRepo,
		CommentRepository: commentRepo,
		ReportService:     reportService,
		LikeService:       likeService,
		CommentService:    commentService,
		MediaService:      mediaService,
		DB:                gormDB,
	}

	s.Start()
}
