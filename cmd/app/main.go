package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"jikoni/cmd"
	httpin "jikoni/internal/adapters/in/http"
	"jikoni/internal/adapters/out/memory"
	"jikoni/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	root := cmd.NewCompositionRoot(configs)

	if configs.SeedDemoData {
		if err := memory.Seed(
			context.Background(),
			root.MenuRepository(),
			root.TableRegistry(),
			root.StaffRoster(),
		); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		root.CreateGetDashboardStatsQueryHandler(),
		configs.SnapshotSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		SnapshotSchedule: goDotEnvVariable("DASHBOARD_SNAPSHOT_SCHEDULE"),
		SeedDemoData:     goDotEnvVariable("SEED_DEMO_DATA") == "true",
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(httpin.Handlers{
		StartCart:        root.CreateStartCartCommandHandler(),
		AddCartItem:      root.CreateAddCartItemCommandHandler(),
		UpdateCartItem:   root.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem:   root.CreateRemoveCartItemCommandHandler(),
		PlaceOrder:       root.CreatePlaceOrderCommandHandler(),
		AdvanceOrder:     root.CreateAdvanceOrderCommandHandler(),
		SetOrderStatus:   root.CreateSetOrderStatusCommandHandler(),
		SetTableStatus:   root.CreateSetTableStatusCommandHandler(),
		CreateMenuItem:   root.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:   root.CreateUpdateMenuItemCommandHandler(),
		SetItemAvailable: root.CreateSetMenuItemAvailabilityCommandHandler(),

		GetCart:           root.CreateGetCartQueryHandler(),
		GetOrders:         root.CreateGetOrdersQueryHandler(),
		GetMenu:           root.CreateGetMenuQueryHandler(),
		GetTables:         root.CreateGetTablesQueryHandler(),
		GetStaff:          root.CreateGetStaffQueryHandler(),
		GetDashboardStats: root.CreateGetDashboardStatsQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
