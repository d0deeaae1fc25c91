package web

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/storage/mongodb"
	"github.com/gofiber/template/html/v2"
	"github.com/sirupsen/logrus"

	"github.com/JuaMGLz/Muebleria/config"
	"github.com/JuaMGLz/Muebleria/web/handlers"
	"github.com/JuaMGLz/Muebleria/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server wired with templates, the session
// store and all routes.
func NewServer(cfg *config.Config) *Server {
	engine := html.New("./web/templates", ".html")
	if cfg.Environment == "development" {
		engine.Reload(true)
	}

	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02/01/2006")
	})
	engine.AddFunc("formatCurrency", func(amount float64) string {
		return fmt.Sprintf("$%.2f MXN", amount)
	})
	engine.AddFunc("inputDate", func(t time.Time) string {
		return t.Format("2006-01-02")
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			logrus.WithError(err).WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).Error("Request failed")
			return c.Status(code).Render("error", fiber.Map{
				"error": err.Error(),
				"code":  code,
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Server-side session state lives in its own Mongo collection, the
	// cookie only carries the id.
	storage := mongodb.New(mongodb.Config{
		ConnectionURI: cfg.MongoURI,
		Database:      cfg.MongoDBName,
		Collection:    cfg.SessionCollection,
	})
	middleware.InitStore(storage, cfg.SessionExpiration)

	handlers.Init(cfg.QRDir)

	// Static files
	app.Static("/qr-images", cfg.QRDir)
	app.Static("/images", cfg.ImagesDir)

	setupRoutes(app)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	logrus.Infof("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully shuts the server down.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber app, used by handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App) {
	// Auth
	app.Get("/login", middleware.NoCache, handlers.LoginForm)
	app.Post("/login", middleware.NoCache, handlers.Login)
	app.Get("/logout", handlers.Logout)

	// Home page
	app.Get("/", middleware.RequireAuth, handlers.HomePage)
	app.Get("/plantilla", middleware.RequireAuth, handlers.HomePage)

	// Categories: listing for everyone, mutations admin-only
	app.Get("/categoria/agregar", middleware.RequireAuth, handlers.CategoryList)
	app.Post("/categoria/agregar", middleware.RequireAuth, middleware.RequireAdmin, handlers.CategoryCreate)
	app.Get("/editarCategoria/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.CategoryEditForm)
	app.Post("/editarCategoria/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.CategoryUpdate)
	app.Get("/eliminarCategoria/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.CategoryDelete)

	// Products: listing for everyone, mutations admin-only
	app.Get("/producto/agregar", middleware.RequireAuth, handlers.ProductList)
	app.Post("/producto/agregar", middleware.RequireAuth, middleware.RequireAdmin, handlers.ProductCreate)
	app.Get("/editarProducto/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.ProductEditForm)
	app.Post("/editarProducto/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.ProductUpdate)
	app.Get("/eliminarProducto/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.ProductDelete)

	// Inventory: listing for everyone, mutations admin-only
	app.Get("/inventario/agregar", middleware.RequireAuth, handlers.InventoryList)
	app.Post("/inventario/agregar", middleware.RequireAuth, middleware.RequireAdmin, handlers.InventoryCreate)
	app.Get("/editarInventario/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.InventoryEditForm)
	app.Post("/editarInventario/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.InventoryUpdate)
	app.Get("/eliminarInventario/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.InventoryDelete)

	// Clients: full access for any authenticated user
	app.Get("/cliente/agregar", middleware.RequireAuth, handlers.ClientList)
	app.Post("/cliente/agregar", middleware.RequireAuth, handlers.ClientCreate)
	app.Get("/editarCliente/:id", middleware.RequireAuth, handlers.ClientEditForm)
	app.Post("/editarCliente/:id", middleware.RequireAuth, handlers.ClientUpdate)
	app.Get("/eliminarCliente/:id", middleware.RequireAuth, handlers.ClientDelete)

	// Sales: full access for any authenticated user
	app.Get("/venta/agregar", middleware.RequireAuth, handlers.SaleList)
	app.Post("/venta/agregar", middleware.RequireAuth, handlers.SaleCreate)
	app.Get("/editarVenta/:id", middleware.RequireAuth, handlers.SaleEditForm)
	app.Post("/editarVenta/:id", middleware.RequireAuth, handlers.SaleUpdate)
	app.Get("/eliminarVenta/:id", middleware.RequireAuth, handlers.SaleDelete)

	// Sale line items: full access for any authenticated user
	app.Get("/detalle/agregar", middleware.RequireAuth, handlers.SaleItemList)
	app.Post("/detalle/agregar", middleware.RequireAuth, handlers.SaleItemCreate)
	app.Get("/editarDetalle/:id", middleware.RequireAuth, handlers.SaleItemEditForm)
	app.Post("/editarDetalle/:id", middleware.RequireAuth, handlers.SaleItemUpdate)
	app.Get("/eliminarDetalle/:id", middleware.RequireAuth, handlers.SaleItemDelete)

	// Administrators: admin-only throughout
	app.Get("/administrador/agregar", middleware.RequireAuth, middleware.RequireAdmin, handlers.AdministratorList)
	app.Post("/administrador/agregar", middleware.RequireAuth, middleware.RequireAdmin, handlers.AdministratorCreate)
	app.Get("/editarAdministrador/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.AdministratorEditForm)
	app.Post("/editarAdministrador/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.AdministratorUpdate)
	app.Get("/eliminarAdministrador/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.AdministratorDelete)

	// Suppliers: listing for everyone, mutations admin-only
	app.Get("/proveedor/agregar", middleware.RequireAuth, handlers.SupplierList)
	app.Post("/proveedor/agregar", middleware.RequireAuth, middleware.RequireAdmin, handlers.SupplierCreate)
	app.Get("/editarProveedor/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.SupplierEditForm)
	app.Post("/editarProveedor/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.SupplierUpdate)
	app.Get("/eliminarProveedor/:id", middleware.RequireAuth, middleware.RequireAdmin, handlers.SupplierDelete)
}
