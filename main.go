package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ezeflt/horizon-ai/config"
	"github.com/ezeflt/horizon-ai/controller"
	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/logic"
	"github.com/ezeflt/horizon-ai/middleware"
	"github.com/ezeflt/horizon-ai/models"
	"github.com/ezeflt/horizon-ai/pkg"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: horizon-ai <config.yaml>")
	}
	cfg, err := config.LoadConfig(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", os.Args[1], err)
	}

	// Relational store for accounts and business records.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.MonthlyRevenue{},
		&models.Employee{},
		&models.Employer{},
		&models.Transaction{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	// Conversation store: document store by default, memory for local runs.
	var convoStore dao.ConversationStore
	switch cfg.Chat.Backend {
	case "memory":
		log.Println("Using in-memory conversation store")
		convoStore = dao.NewMemoryConversationStore()
	default:
		client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			log.Fatalf("Failed to ping MongoDB: %v", err)
		}
		convoStore, err = dao.NewConversationDAO(ctx, client.Database(cfg.Mongo.DBName))
		if err != nil {
			log.Fatalf("Failed to initialize conversation store: %v", err)
		}
	}

	chatClient, err := pkg.NewChatClient(pkg.ChatConfig{
		EndpointURL: cfg.Chat.EndpointURL,
		APIKey:      cfg.Chat.APIKey,
		Model:       cfg.Chat.Model,
		Referer:     cfg.Chat.Referer,
	})
	if err != nil {
		log.Fatalf("Failed to initialize chat client: %v", err)
	}

	// DAOs
	userDAO := dao.NewUserDAO(db)
	revenueDAO := dao.NewRevenueDAO(db)
	employeeDAO := dao.NewEmployeeDAO(db)
	txDAO := dao.NewTransactionDAO(db)

	// Logics
	userLogic := logic.NewUserLogic(userDAO, logic.AuthConfig{
		Secret:  cfg.Auth.Secret,
		ExpHour: cfg.Auth.ExpHour,
	})
	chatLogic := logic.NewChatLogic(convoStore, chatClient)
	revenueLogic := logic.NewRevenueLogic(revenueDAO)
	employeeLogic := logic.NewEmployeeLogic(employeeDAO)
	txLogic := logic.NewTransactionLogic(txDAO)

	// Controllers
	authCtrl := controller.NewAuthController(userLogic)
	chatCtrl := controller.NewChatController(chatLogic)
	revenueCtrl := controller.NewRevenueController(revenueLogic, employeeLogic)
	employeeCtrl := controller.NewEmployeeController(employeeLogic)
	txCtrl := controller.NewTransactionController(txLogic)

	// Setup Gin router
	r := gin.Default()
	r.GET("/health", func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			ctx.JSON(503, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		ctx.JSON(200, gin.H{"status": "ok", "message": "Horizon AI API is running"})
	})

	r.POST("/api/auth/register", authCtrl.Register)
	r.POST("/api/auth/login", authCtrl.Login)

	auth := middleware.Auth(cfg.Auth.Secret)
	api := r.Group("/api", auth)
	{
		api.POST("/chat/message", chatCtrl.SendMessage)
		api.GET("/chat/history", chatCtrl.GetHistory)

		api.GET("/revenue", revenueCtrl.GetByYear)
		api.GET("/revenue/all", revenueCtrl.GetAll)
		api.POST("/revenue", revenueCtrl.CreateOrUpdate)
		api.POST("/revenue/seed", revenueCtrl.SeedDemoData)

		api.GET("/employees", employeeCtrl.GetEmployees)
		api.POST("/employees", employeeCtrl.CreateEmployee)
		api.GET("/employees/employer", employeeCtrl.GetEmployer)
		api.POST("/employees/employer", employeeCtrl.SetEmployer)

		api.GET("/transactions", txCtrl.GetTransactions)
		api.GET("/transactions/by-month", txCtrl.GetByMonth)
		api.GET("/transactions/revenue", txCtrl.GetRevenue)
		api.POST("/transactions", txCtrl.CreateTransaction)
	}

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
