package routes

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/handlers"
	"github.com/Rakhulsr/go-catalog/app/handlers/admin"
	"github.com/Rakhulsr/go-catalog/app/middlewares"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/storage"
	"github.com/Rakhulsr/go-catalog/app/utils/renderer"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Deps are the long-lived pieces main owns; everything else is built from DB here.
type Deps struct {
	DB       *gorm.DB
	Env      configs.ENV
	Store    storage.Store
	Sessions *sessions.AdminSessionStore
	Auth     *services.AuthService
	Tracker  handlers.EventTracker
	Contact  *services.ContactService
	CSRFKey  []byte
}

func NewRouter(deps Deps) http.Handler {
	router := mux.NewRouter()

	rnd := renderer.New(deps.Env.TemplatesDir, !deps.Env.IsProduction())
	validate := validator.New()

	categoryRepo := repositories.NewCategoryRepository(deps.DB)
	productRepo := repositories.NewProductRepository(deps.DB)
	heroRepo := repositories.NewHeroImageRepository(deps.DB)
	settingRepo := repositories.NewSettingRepository(deps.DB)
	orderRepo := repositories.NewOrderRepository(deps.DB)
	analyticsRepo := repositories.NewAnalyticsRepository(deps.DB)
	messageRepo := repositories.NewContactMessageRepository(deps.DB)
	colorRepo := repositories.NewColorRepository(deps.DB)
	sizeRepo := repositories.NewSizeRepository(deps.DB)

	homeHandler := handlers.NewHomeHandler(rnd, categoryRepo, productRepo, heroRepo)
	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, deps.Tracker, rnd, deps.Env.WhatsAppPhone)
	apiHandler := handlers.NewAPIHandler(rnd, categoryRepo, productRepo, heroRepo, settingRepo)
	authHandler := handlers.NewAuthHandler(rnd, deps.Auth, deps.Sessions)
	contactHandler := handlers.NewContactHandler(deps.Contact, validate)

	adminHandler := admin.NewAdminHandler(admin.Dependencies{
		Render:       rnd,
		Validator:    validate,
		Store:        deps.Store,
		Products:     productRepo,
		Categories:   categoryRepo,
		HeroImages:   heroRepo,
		Orders:       orderRepo,
		Messages:     messageRepo,
		Colors:       colorRepo,
		Sizes:        sizeRepo,
		HeroImageSvc: services.NewHeroImageService(heroRepo),
		SettingsSvc:  services.NewSettingsService(settingRepo),
		DashboardSvc: services.NewDashboardService(productRepo, categoryRepo, orderRepo, analyticsRepo, messageRepo),
	})

	settings := middlewares.SettingsMiddleware(settingRepo)
	router.Use(settings)
	router.Use(middlewares.OptionalAdmin(deps.Sessions))
	router.NotFoundHandler = settings(handlers.NotFound(rnd))

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(deps.Env.StaticDir))))
	if local, ok := deps.Store.(*storage.LocalStore); ok {
		router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads", local))
	}

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/category/{slug}", homeHandler.Category).Methods("GET")
	router.HandleFunc("/products/{id}", productHandler.Detail).Methods("GET")
	router.HandleFunc("/products/{id}/whatsapp", productHandler.WhatsApp).Methods("GET")
	router.HandleFunc("/contact", contactHandler.Submit).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/categories", apiHandler.Categories).Methods("GET")
	api.HandleFunc("/products", apiHandler.Products).Methods("GET")
	api.HandleFunc("/products/{id}/images", apiHandler.ProductImages).Methods("GET")
	api.HandleFunc("/hero-images", apiHandler.HeroImages).Methods("GET")
	api.HandleFunc("/settings", apiHandler.Settings).Methods("GET")

	router.HandleFunc("/admin/login", authHandler.LoginPage).Methods("GET")
	router.HandleFunc("/admin/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/admin/logout", authHandler.Logout).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminGate(deps.Sessions))

	adminRouter.HandleFunc("", adminHandler.Dashboard).Methods("GET")
	adminRouter.HandleFunc("/", adminHandler.Dashboard).Methods("GET")
	adminRouter.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")

	adminRouter.HandleFunc("/products", adminHandler.GetProductsPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/edit/{id}", adminHandler.EditProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/edit/{id}", adminHandler.EditProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods("DELETE")
	adminRouter.HandleFunc("/products/{id}/images/{imageID}", adminHandler.DeleteProductImage).Methods("DELETE")

	adminRouter.HandleFunc("/categories", adminHandler.GetCategoriesPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/edit/{id}", adminHandler.EditCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/edit/{id}", adminHandler.EditCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}/move/{direction:up|down}", adminHandler.MoveCategory).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods("DELETE")

	adminRouter.HandleFunc("/hero-images", adminHandler.GetHeroImagesPage).Methods("GET")
	adminRouter.HandleFunc("/hero-images/add", adminHandler.AddHeroImagePage).Methods("GET")
	adminRouter.HandleFunc("/hero-images/add", adminHandler.AddHeroImagePost).Methods("POST")
	adminRouter.HandleFunc("/hero-images/edit/{id}", adminHandler.EditHeroImagePage).Methods("GET")
	adminRouter.HandleFunc("/hero-images/edit/{id}", adminHandler.EditHeroImagePost).Methods("POST")
	adminRouter.HandleFunc("/hero-images/{id}", adminHandler.DeleteHeroImage).Methods("DELETE")

	adminRouter.HandleFunc("/settings", adminHandler.GetSettingsPage).Methods("GET")
	adminRouter.HandleFunc("/settings", adminHandler.SaveSettings).Methods("POST")

	adminRouter.HandleFunc("/orders", adminHandler.GetOrdersPage).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", adminHandler.GetOrderDetailPage).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}/status", adminHandler.UpdateOrderStatus).Methods("POST")
	adminRouter.HandleFunc("/orders/{id}", adminHandler.DeleteOrder).Methods("DELETE")

	adminRouter.HandleFunc("/inquiries", adminHandler.GetInquiriesPage).Methods("GET")

	adminRouter.HandleFunc("/messages", adminHandler.GetMessagesPage).Methods("GET")
	adminRouter.HandleFunc("/messages/{id}/read", adminHandler.MarkMessageRead).Methods("POST")
	adminRouter.HandleFunc("/messages/{id}", adminHandler.DeleteMessage).Methods("DELETE")

	adminRouter.HandleFunc("/variants", adminHandler.GetVariantsPage).Methods("GET")
	adminRouter.HandleFunc("/colors", adminHandler.SaveColor).Methods("POST")
	adminRouter.HandleFunc("/colors/{id}", adminHandler.SaveColor).Methods("POST")
	adminRouter.HandleFunc("/colors/{id}", adminHandler.DeleteColor).Methods("DELETE")
	adminRouter.HandleFunc("/sizes", adminHandler.SaveSize).Methods("POST")
	adminRouter.HandleFunc("/sizes/{id}", adminHandler.SaveSize).Methods("POST")
	adminRouter.HandleFunc("/sizes/{id}", adminHandler.DeleteSize).Methods("DELETE")

	var handler http.Handler = router
	if len(deps.CSRFKey) > 0 {
		handler = csrf.Protect(deps.CSRFKey,
			csrf.Secure(deps.Env.IsProduction()),
			csrf.Path("/"),
			csrf.ErrorHandler(http.HandlerFunc(csrfFailure)),
		)(handler)
		log.Println("✅ CSRF protection enabled.")
	}

	// Method override runs outside mux so the rewritten method takes part in route matching.
	return middlewares.MethodOverrideMiddleware(handler)
}

func csrfFailure(w http.ResponseWriter, r *http.Request) {
	log.Printf("csrfFailure: %s %s: %v", r.Method, r.URL.Path, csrf.FailureReason(r))
	http.Error(w, "انتهت صلاحية النموذج، أعد تحميل الصفحة وحاول مرة أخرى", http.StatusForbidden)
}
