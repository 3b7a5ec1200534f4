package database

import (
	"fmt"
	"log"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Reseed drops the whole schema, recreates it and loads the demo fixtures.
// It is destructive and must only run when explicitly requested (DB_SEED=1).
func Reseed() error {
	log.Println("Reseeding database (drop + recreate + fixtures)...")

	if err := DB.Migrator().DropTable(
		&models.Post{},
		&models.Product{},
		&models.Firm{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := Migrate(); err != nil {
		return err
	}

	if err := loadFixtures(); err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	log.Println("Database reseeded")
	return nil
}

func loadFixtures() error {
	firms := []models.Firm{
		{
			Name:     "Molino Gerratana",
			Logo:     "molino.jpg",
			Content:  "Stone-ground flours from Sicilian durum wheat, milled since 1921.",
			Location: "Ragusa",
		},
		{
			Name:     "Caseificio Valnotte",
			Logo:     "caseificio.jpg",
			Content:  "Raw-milk cheeses aged in the cellars of the Valnotte valley.",
			Location: "Bergamo",
		},
		{
			Name:     "Oleificio Santa Croce",
			Logo:     "oleificio.jpg",
			Content:  "Cold-pressed extra virgin olive oil from century-old groves.",
			Location: "Bari",
		},
	}
	if err := DB.Create(&firms).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Type: "Semola rimacinata", Photo: "semola.jpg", PointAvailability: "Mercato Ortigia, stall 12", FirmProducer: firms[0].ID},
		{Type: "Farina integrale", Photo: "farina.jpg", PointAvailability: "Via Roma 44, Ragusa", FirmProducer: firms[0].ID},
		{Type: "Taleggio", Photo: "taleggio.jpg", PointAvailability: "Bottega Valnotte, Bergamo Alta", FirmProducer: firms[1].ID},
		{Type: "Stracchino", Photo: "stracchino.jpg", PointAvailability: "Bottega Valnotte, Bergamo Alta", FirmProducer: firms[1].ID},
		{Type: "Olio extravergine", Photo: "olio.jpg", PointAvailability: "Frantoio Santa Croce, Bari", FirmProducer: firms[2].ID},
	}
	if err := DB.Create(&products).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := models.User{
		Username:     "demo",
		Email:        "demo@followthefood.local",
		ImageFile:    models.DefaultImageFile,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&demo).Error; err != nil {
		return err
	}

	posts := []models.Post{
		{
			Title:     "Tasting the new semola",
			Content:   "Molino Gerratana's semola rimacinata makes a pasta dough unlike anything else.",
			UserID:    demo.ID,
			ProductID: &products[0].ID,
		},
		{
			Title:   "A weekend in Bergamo",
			Content: "Visited the Valnotte cellars and came home with more cheese than luggage space.",
			UserID:  demo.ID,
		},
	}
	return DB.Create(&posts).Error
}
