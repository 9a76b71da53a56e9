package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-ops-backend/models"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := mysqldrv.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = host + ":" + port
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	cfg := mysqldrv.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	cfg.DBName = envOrDefault("DB_NAME", "hotel_ops")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN(), nil
}

// SeedDatabase creates the initial actors, the settings row and a starter
// room inventory. Every block is idempotent: it only inserts when the table
// is empty.
func SeedDatabase() {
	// ---------------- Users ----------------
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		defaults := []struct {
			name, email, role, pass string
		}{
			{"Admin User", "admin@hotel.local", models.RoleAdmin, envOrDefault("SEED_ADMIN_PASSWORD", "admin123")},
			{"Front Manager", "manager@hotel.local", models.RoleManager, "manager123"},
			{"Reception Desk", "reception@hotel.local", models.RoleReception, "reception123"},
			{"Housekeeping", "staff@hotel.local", models.RoleStaff, "staff123"},
		}
		for _, d := range defaults {
			hash, err := bcrypt.GenerateFromPassword([]byte(d.pass), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("warning: failed to hash seed password for %s: %v", d.email, err)
				continue
			}
			user := models.User{FullName: d.name, Email: d.email, Role: d.role, Password: string(hash)}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("warning: failed to seed user %s: %v", d.email, err)
			}
		}
		log.Println("Default users seeded")
	}

	// ---------------- Settings ----------------
	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:                "Hotel Ops",
			DefaultTaxRate:      decimal.NewFromInt(7),
			DefaultDiscountRate: decimal.Zero,
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed settings: %v", err)
		} else {
			log.Println("Settings seeded")
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", RoomType: "Single", PricePerNight: decimal.NewFromInt(60), Floor: "1", MaxOccupancy: 1},
			{RoomNumber: "102", RoomType: "Double", PricePerNight: decimal.NewFromInt(90), Floor: "1", MaxOccupancy: 2},
			{RoomNumber: "201", RoomType: "Deluxe", PricePerNight: decimal.NewFromInt(140), Floor: "2", MaxOccupancy: 3},
			{RoomNumber: "202", RoomType: "Suite", PricePerNight: decimal.NewFromInt(220), Floor: "2", MaxOccupancy: 4},
			{RoomNumber: "301", RoomType: "Family", PricePerNight: decimal.NewFromInt(180), Floor: "3", MaxOccupancy: 5},
			{RoomNumber: "302", RoomType: "Presidential", PricePerNight: decimal.NewFromInt(450), Floor: "3", MaxOccupancy: 4},
		}
		for i := range rooms {
			rooms[i].SetStatus(models.RoomAvailable)
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}
	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.HotelSetting{},
		&models.Room{},
		&models.Booking{},
		&models.Invoice{},
		&models.Payment{},
		&models.ServiceRequest{},
		&models.Review{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
