package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Site{}, &Section{}, &Page{}, &Ref{}, &Note{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&PublishedSite{}, &PublishedSection{}, &PublishedPage{}); err != nil {
		return err
	}

	return nil
}
