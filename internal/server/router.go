package server

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/nextgencodex-com/Vengase-backend/config"
	adminhandler "github.com/nextgencodex-com/Vengase-backend/internal/admin/handler"
	"github.com/nextgencodex-com/Vengase-backend/internal/auth"
	categoryhandler "github.com/nextgencodex-com/Vengase-backend/internal/category/handler"
	orderhandler "github.com/nextgencodex-com/Vengase-backend/internal/order/handler"
	producthandler "github.com/nextgencodex-com/Vengase-backend/internal/product/handler"
	"github.com/nextgencodex-com/Vengase-backend/internal/upload"
	userhandler "github.com/nextgencodex-com/Vengase-backend/internal/user/handler"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

// Handlers bundles the route groups the router mounts.
type Handlers struct {
	Products   *producthandler.ProductHandler
	Categories *categoryhandler.CategoryHandler
	Orders     *orderhandler.OrderHandler
	Users      *userhandler.UserHandler
	Admins     *adminhandler.AdminHandler
	Uploads    *upload.Handler
}

// NewRouter wires the full route table: CORS and rate limiting globally,
// authentication and the admin gate per route.
func NewRouter(cfg *config.Config, h *Handlers, authmw *auth.Middleware, limiter *RateLimiter) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	admin := func(fn http.HandlerFunc) http.Handler {
		return authmw.Authenticate(authmw.RequireAdmin(fn))
	}
	authed := func(fn http.HandlerFunc) http.Handler {
		return authmw.Authenticate(fn)
	}

	products := api.PathPrefix("/products").Subrouter()
	products.HandleFunc("", h.Products.List).Methods(http.MethodGet)
	products.HandleFunc("/search/{term}", h.Products.Search).Methods(http.MethodGet)
	products.HandleFunc("/category/{category}", h.Products.ListByCategory).Methods(http.MethodGet)
	products.HandleFunc("/{id:[0-9]+}", h.Products.Get).Methods(http.MethodGet)
	products.Handle("", admin(h.Products.Create)).Methods(http.MethodPost)
	products.Handle("/{id:[0-9]+}", admin(h.Products.Update)).Methods(http.MethodPut)
	products.Handle("/{id:[0-9]+}", admin(h.Products.Delete)).Methods(http.MethodDelete)
	products.Handle("/{id:[0-9]+}/stock", admin(h.Products.UpdateStock)).Methods(http.MethodPatch)

	categories := api.PathPrefix("/categories").Subrouter()
	categories.HandleFunc("", h.Categories.Legacy).Methods(http.MethodGet)
	categories.HandleFunc("/stats", h.Categories.Stats).Methods(http.MethodGet)
	categories.HandleFunc("/all", h.Categories.List).Methods(http.MethodGet)
	categories.Handle("", admin(h.Categories.Create)).Methods(http.MethodPost)
	categories.Handle("/initialize", admin(h.Categories.Initialize)).Methods(http.MethodPost)
	categories.Handle("/{id}", admin(h.Categories.Update)).Methods(http.MethodPut)
	categories.Handle("/{id}", admin(h.Categories.Delete)).Methods(http.MethodDelete)
	categories.Handle("/{id}/subcategories", admin(h.Categories.AddSubcategory)).Methods(http.MethodPost)
	categories.Handle("/{id}/subcategories/{subId}", admin(h.Categories.UpdateSubcategory)).Methods(http.MethodPut)
	categories.Handle("/{id}/subcategories/{subId}", admin(h.Categories.DeleteSubcategory)).Methods(http.MethodDelete)

	orders := api.PathPrefix("/orders").Subrouter()
	orders.Handle("", authmw.OptionalAuth(http.HandlerFunc(h.Orders.Create))).Methods(http.MethodPost)
	orders.Handle("", admin(h.Orders.List)).Methods(http.MethodGet)
	orders.Handle("/stats/overview", admin(h.Orders.Stats)).Methods(http.MethodGet)
	orders.Handle("/user/{userId}", authed(h.Orders.ListUserOrders)).Methods(http.MethodGet)
	orders.Handle("/{orderId}", authed(h.Orders.Get)).Methods(http.MethodGet)
	orders.Handle("/{orderId}/status", admin(h.Orders.UpdateStatus)).Methods(http.MethodPatch)
	orders.Handle("/{orderId}/payment", admin(h.Orders.UpdatePaymentStatus)).Methods(http.MethodPatch)

	authGroup := api.PathPrefix("/auth").Subrouter()
	authGroup.Handle("/register", authed(h.Users.Register)).Methods(http.MethodPost)
	authGroup.Handle("/signin", authed(h.Users.SignIn)).Methods(http.MethodPost)
	authGroup.Handle("/profile", authed(h.Users.GetProfile)).Methods(http.MethodGet)
	authGroup.Handle("/profile", authed(h.Users.UpdateProfile)).Methods(http.MethodPut)
	authGroup.Handle("/profile", authed(h.Users.Delete)).Methods(http.MethodDelete)
	authGroup.Handle("/sync-cart", authed(h.Users.SyncCart)).Methods(http.MethodPost)
	authGroup.Handle("/sync-wishlist", authed(h.Users.SyncWishlist)).Methods(http.MethodPost)
	authGroup.Handle("/cart/add", authed(h.Users.AddToCart)).Methods(http.MethodPost)
	authGroup.Handle("/cart/remove", authed(h.Users.RemoveFromCart)).Methods(http.MethodPost)
	authGroup.Handle("/wishlist/toggle", authed(h.Users.ToggleWishlist)).Methods(http.MethodPost)
	authGroup.Handle("/verify-admin", admin(h.Admins.VerifyAdmin)).Methods(http.MethodGet)
	authGroup.Handle("/orders", authed(h.Orders.ListMine)).Methods(http.MethodGet)

	adminGroup := api.PathPrefix("/admin").Subrouter()
	adminGroup.HandleFunc("/create-admin", h.Admins.Create).Methods(http.MethodPost)
	adminGroup.Handle("/make-admin", admin(h.Admins.MakeAdmin)).Methods(http.MethodPost)
	adminGroup.Handle("/remove-admin", admin(h.Admins.Remove)).Methods(http.MethodPost)
	adminGroup.Handle("/list", admin(h.Admins.List)).Methods(http.MethodGet)
	adminGroup.Handle("/stats", admin(h.Admins.Stats)).Methods(http.MethodGet)
	adminGroup.Handle("/users", admin(h.Users.ListAll)).Methods(http.MethodGet)
	adminGroup.Handle("/users/stats", admin(h.Users.Stats)).Methods(http.MethodGet)

	uploads := api.PathPrefix("/upload").Subrouter()
	uploads.Handle("/image", admin(h.Uploads.Single)).Methods(http.MethodPost)
	uploads.Handle("/images", admin(h.Uploads.Multiple)).Methods(http.MethodPost)
	uploads.Handle("/image/{fileName}", admin(h.Uploads.Delete)).Methods(http.MethodDelete)

	// Static assets: product images and legacy upload paths share the same
	// directory.
	fs := http.FileServer(http.Dir(cfg.Upload.ImageDir))
	r.PathPrefix("/images/").Handler(http.StripPrefix("/images/", fs))
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", fs))

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httpres.Error(w, http.StatusNotFound, "Route not found", nil)
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	return cors(limiter.Middleware(r))
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	httpres.Success(w, http.StatusOK, map[string]string{"status": "ok"})
}
