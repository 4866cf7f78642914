package model

import (
	"os"
	"path/filepath"

	"bulletin-board/backend/common"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func seedMessagesIfEmpty() error {
	var messageCount int64
	if err := DB.Model(&Message{}).Count(&messageCount).Error; err != nil {
		return err
	}
	if messageCount > 0 {
		return nil
	}
	common.SysLog("no messages exist, seeding the board with sample messages")
	sampleMessages := []Message{
		{
			Title:          "System Maintenance Scheduled for This Weekend",
			Content:        "Our servers will undergo scheduled maintenance on Saturday from 2:00 AM to 6:00 AM EST. Please save your work and expect brief service interruptions.",
			Type:           string(MessageTypeAnnouncement),
			Priority:       string(MessagePriorityUrgent),
			Author:         "IT Department",
			AuthorInitials: "IT",
		},
		{
			Title:          "Welcome to Our New Community Platform!",
			Content:        "We're excited to launch our redesigned message board. Explore new features including real-time updates, better organization, and improved accessibility.",
			Type:           string(MessageTypeAnnouncement),
			Priority:       string(MessagePriorityPinned),
			Author:         "Admin Team",
			AuthorInitials: "AD",
		},
		{
			Title:          "Parking Lot B Closed for Repairs",
			Content:        "Parking Lot B will be closed January 15-17 for resurfacing. Please use Lots A or C during this time. We apologize for any inconvenience.",
			Type:           string(MessageTypeNotice),
			Priority:       string(MessagePriorityNormal),
			Author:         "Facilities",
			AuthorInitials: "FM",
		},
	}
	return DB.Create(&sampleMessages).Error
}

func InitDB() (err error) {
	if dir := filepath.Dir(common.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	common.SysLog("using SQLite as database: " + common.SQLitePath)
	dsn := common.SQLitePath + "?_busy_timeout=5000&_foreign_keys=on"
	dbInstance, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		common.SysError("failed to connect database: " + err.Error())
		return err
	}

	DB = dbInstance

	err = DB.AutoMigrate(
		&Message{},
		&Event{},
		&EventImage{},
	)
	if err != nil {
		common.SysError("failed to auto migrate database schema: " + err.Error())
		return err
	}

	if err = seedMessagesIfEmpty(); err != nil {
		common.SysError("failed to seed messages: " + err.Error())
		return err
	}

	common.SysLog("database initialized successfully")
	return nil
}

func CloseDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	common.SysLog("closing database connection")
	return sqlDB.Close()
}
