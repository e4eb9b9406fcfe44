// cmd/seeder/main.go
//
// Seeds the database with demo inventory, license pools and devices.
// Fixtures can be supplied as a JSON file, otherwise a small built-in
// dataset is used. Pools with an existing SKU are skipped on re-run.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tecops/assetdesk/internal/adapters/db"
	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/services"
	"github.com/tecops/assetdesk/internal/pkg/config"
	"github.com/tecops/assetdesk/internal/pkg/logger"
)

type fixtures struct {
	Items []itemFixture `json:"items"`
	Pools []poolFixture `json:"pools"`
}

type itemFixture struct {
	SKU      string         `json:"sku"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Quantity int            `json:"quantity"`
	Location string         `json:"location,omitempty"`
	Device   *deviceFixture `json:"device,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type deviceFixture struct {
	Type     string `json:"device_type"`
	Company  string `json:"company,omitempty"`
	AssetTag string `json:"asset_tag,omitempty"`
	Serial   string `json:"serial,omitempty"`
	Model    string `json:"model,omitempty"`
	OS       string `json:"os,omitempty"`
}

type poolFixture struct {
	SKU         string `json:"sku"`
	DisplayName string `json:"display_name,omitempty"`
	Total       int    `json:"total"`
}

func main() {
	var (
		fixturesFile = flag.String("fixtures", "", "JSON file with seed fixtures (optional)")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun       = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	appLogger := logger.SetupLogger(*logLevel, "text")
	slogger := appLogger.Logger

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fx := defaultFixtures()
	if *fixturesFile != "" {
		fx, err = loadFixtures(*fixturesFile)
		if err != nil {
			slogger.Error("failed to load fixtures", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	slogger.Info("fixtures loaded",
		slog.Int("items", len(fx.Items)),
		slog.Int("pools", len(fx.Pools)))

	if *dryRun {
		for _, it := range fx.Items {
			slogger.Info("would create item", slog.String("sku", it.SKU), slog.String("name", it.Name))
		}
		for _, p := range fx.Pools {
			slogger.Info("would create pool", slog.String("sku", p.SKU), slog.Int("total", p.Total))
		}
		return
	}

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxConnections:  4,
		MinConnections:  1,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	store := db.NewStore(database, slogger)
	inventory := services.NewInventoryService(store, slogger)
	allocation := services.NewAllocationService(store, slogger)

	const actor = "seeder"

	var created, skipped int
	for _, it := range fx.Items {
		item := &domain.InventoryItem{
			SKU:      it.SKU,
			Name:     it.Name,
			Category: domain.ItemCategory(it.Category),
			Quantity: it.Quantity,
			Location: it.Location,
			Metadata: it.Metadata,
		}

		if it.Device != nil {
			device := &domain.Device{
				Type:     domain.DeviceType(it.Device.Type),
				Company:  it.Device.Company,
				AssetTag: it.Device.AssetTag,
				Serial:   it.Device.Serial,
				Model:    it.Device.Model,
				OS:       it.Device.OS,
			}
			_, err = allocation.CreateDeviceAtomic(ctx, item, device, actor)
		} else {
			_, err = inventory.CreateItem(ctx, item, actor)
		}

		if err != nil {
			slogger.Error("failed to create item",
				slog.String("sku", it.SKU),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		created++
	}

	for _, p := range fx.Pools {
		pool := &domain.LicensePool{
			SKU:         p.SKU,
			DisplayName: p.DisplayName,
			Total:       p.Total,
		}
		_, err := allocation.CreatePool(ctx, pool, actor)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrConflict):
			skipped++
			slogger.Debug("pool already exists", slog.String("sku", p.SKU))
		default:
			slogger.Error("failed to create pool",
				slog.String("sku", p.SKU),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slogger.Info("seeding complete",
		slog.Int("created", created),
		slog.Int("skipped", skipped))
}

func loadFixtures(path string) (fixtures, error) {
	var fx fixtures
	data, err := os.ReadFile(path)
	if err != nil {
		return fx, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	if err := json.Unmarshal(data, &fx); err != nil {
		return fx, fmt.Errorf("failed to parse fixtures file: %w", err)
	}
	return fx, nil
}

func defaultFixtures() fixtures {
	return fixtures{
		Items: []itemFixture{
			{
				SKU: "LT-DELL-5540", Name: "Dell Latitude 5540", Category: "device",
				Quantity: 1, Location: "Storage A",
				Device: &deviceFixture{
					Type: "Laptop", Company: "Dell", AssetTag: "AT-0001",
					Serial: "5CG1234XYZ", Model: "Latitude 5540", OS: "Windows",
				},
			},
			{
				SKU: "MN-DELL-U2723", Name: "Dell UltraSharp 27", Category: "device",
				Quantity: 1, Location: "Storage A",
				Device: &deviceFixture{
					Type: "Monitor", Company: "Dell", AssetTag: "AT-0002",
					Serial: "CN-0F2J3K", Model: "U2723QE",
				},
			},
			{
				SKU: "AC-DOCK-WD19", Name: "Dell Dock WD19S", Category: "accessory",
				Quantity: 25, Location: "Storage B",
			},
			{
				SKU: "AC-HDSET-5220", Name: "Jabra Evolve2 65", Category: "accessory",
				Quantity: 40, Location: "Storage B",
			},
		},
		Pools: []poolFixture{
			{SKU: "O365-E3", DisplayName: "Microsoft 365 E3", Total: 150},
			{SKU: "ADOBE-CC", DisplayName: "Adobe Creative Cloud", Total: 20},
			{SKU: "SLACK-PRO", DisplayName: "Slack Pro", Total: 100},
		},
	}
}
