package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/techmaster-vietnam/blogos"
	"github.com/techmaster-vietnam/blogos/repository"
	"github.com/techmaster-vietnam/blogos/utils"
	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/gorm"
)

const demoUsername = "demo"

// SeedData tạo blogger, categories và labels mẫu
// Chỉ chạy khi SEED_DATA=true; blogger demo đã có thì chỉ in lại token
func SeedData(db *gorm.DB, cfg *blogos.Config) error {
	if os.Getenv("SEED_DATA") != "true" {
		return nil
	}

	bloggerRepo := repository.NewBloggerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	labelRepo := repository.NewLabelRepository(db)

	blogger, err := bloggerRepo.GetByUsername(demoUsername)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		blogger = &blogos.Blogger{Username: demoUsername, Email: "demo@blogos.local", Active: true}
		if err := bloggerRepo.Create(blogger); err != nil {
			return goerrorkit.WrapWithMessage(err, "Failed to initialize blogger").WithData(map[string]interface{}{
				"username": demoUsername,
			})
		}

		for _, title := range []string{"Golang", "Database", "DevOps"} {
			if err := categoryRepo.Create(&blogos.Category{BloggerID: blogger.ID, Title: title}); err != nil {
				return goerrorkit.WrapWithMessage(err, fmt.Sprintf("Failed to initialize category %s", title))
			}
		}

		for _, title := range []string{"backend", "tutorial", "tips"} {
			if err := labelRepo.Create(&blogos.Label{CreatorID: blogger.ID, Title: title}); err != nil {
				return goerrorkit.WrapWithMessage(err, fmt.Sprintf("Failed to initialize label %s", title))
			}
		}
	case err != nil:
		return goerrorkit.WrapWithMessage(err, "Failed to get demo blogger")
	}

	// Token dùng để gọi API khi phát triển
	token, err := utils.GenerateToken(blogger.ID, blogger.Username, cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to generate demo token")
	}
	fmt.Printf("Seeded blogger %q (id=%d)\nDev token: %s\n", blogger.Username, blogger.ID, token)

	return nil
}
