package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"

	"go-catalog-ws/internal/handler"
	"go-catalog-ws/internal/middleware"
	"go-catalog-ws/internal/model"
	"go-catalog-ws/internal/service"
	"go-catalog-ws/internal/ws"
	"go-catalog-ws/pkg/jwt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Deps struct {
	Catalog     service.CatalogService
	Auth        service.AuthService
	Tokens      *jwt.Manager
	Hub         *ws.Hub
	StoreDriver string
	// AccessLog toggles fiber's request logger.
	AccessLog bool
}

func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     "Gaming Store Catalog v1.0",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	if d.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())
	app.Use(cors.New())

	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	authHandler := handler.NewAuthHandler(d.Auth)
	authEnabled := d.Auth.Enabled()

	// Product Routes
	for _, prefix := range []string{"/products", "/api/products"} {
		products := app.Group(prefix)
		products.Get("/", catalogHandler.GetProducts)
		products.Get("/:id", catalogHandler.GetProduct)
		products.Post("/",
			middleware.RequireAuth(d.Tokens, authEnabled),
			middleware.RequirePrivilege(model.PrivilegeProductCreate, authEnabled),
			catalogHandler.CreateProduct)
		products.Put("/:id",
			middleware.RequireAuth(d.Tokens, authEnabled),
			middleware.RequirePrivilege(model.PrivilegeProductUpdate, authEnabled),
			catalogHandler.UpdateProduct)
		products.Delete("/:id",
			middleware.RequireAuth(d.Tokens, authEnabled),
			middleware.RequirePrivilege(model.PrivilegeProductDelete, authEnabled),
			catalogHandler.DeleteProduct)
	}

	// Auth Routes
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	app.Get("/healthz", handler.Health(d.StoreDriver))

	// WebSocket Route
	if d.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(func(c *websocket.Conn) {
			d.Hub.Register <- c
			defer func() { d.Hub.Unregister <- c }()

			for {
				// Keep alive loop
				if _, _, err := c.ReadMessage(); err != nil {
					break
				}
			}
		}))
	}

	return app
}
