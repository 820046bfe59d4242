package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/api/scheduler"
	"github.com/linesmerrill/devcamper-api/config"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/geocoder"
	"github.com/linesmerrill/devcamper-api/mailer"
	"github.com/linesmerrill/devcamper-api/models"
	"github.com/linesmerrill/devcamper-api/storage"
)

// App stores the router, db connection and outbound clients, so they can be reused
type App struct {
	Router    *mux.Router
	Config    *config.Config
	Metrics   *api.MetricsCollector
	Scheduler *scheduler.Scheduler
	Geocoder  geocoder.Geocoder
	Mailer    mailer.Mailer
	Photos    storage.PhotoStore
	Tokens    *api.TokenIssuer

	client   databases.ClientHelper
	dbHelper databases.DatabaseHelper
	cancel   context.CancelFunc
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Metrics == nil {
		a.Metrics = api.NewMetricsCollector(api.DefaultMaxSamples)
	}

	uDB := databases.NewUserDatabase(a.dbHelper)
	bDB := databases.NewBootcampDatabase(a.dbHelper)
	cDB := databases.NewCourseDatabase(a.dbHelper)
	rDB := databases.NewReviewDatabase(a.dbHelper)

	ctx := context.Background()
	if a.cancel == nil {
		ctx, a.cancel = context.WithCancel(ctx)
	}
	m := api.NewMiddleware(ctx, uDB, a.Tokens)

	b := Bootcamp{DB: bDB, CDB: cDB, RDB: rDB, Geocoder: a.Geocoder, Photos: a.Photos, MaxUpload: a.Config.MaxFileUpload}
	c := Course{DB: cDB, BDB: bDB}
	rv := Review{DB: rDB, BDB: bDB}
	au := Auth{DB: uDB, Middleware: m, Mailer: a.Mailer, Config: a.Config}
	u := User{DB: uDB}
	mt := Metrics{Collector: a.Metrics}

	r := mux.NewRouter()
	r.Use(a.Metrics.Middleware)
	if a.Config.RequestTimeout > 0 {
		r.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))
	}

	publisher := api.Authorize(models.RolePublisher, models.RoleAdmin)
	reviewer := api.Authorize(models.RoleUser, models.RoleAdmin)
	admin := api.Authorize(models.RoleAdmin)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	r.Handle("/metrics", m.Protect(admin(http.HandlerFunc(mt.MetricsHandler)))).Methods("GET")

	if a.Config.PhotoStorage == storage.BackendDisk {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(a.Config.FileUploadPath))))
	}

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/register", http.HandlerFunc(au.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/login", http.HandlerFunc(au.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/logout", http.HandlerFunc(au.LogoutHandler)).Methods("GET")
	apiCreate.Handle("/auth/me", m.Protect(http.HandlerFunc(au.MeHandler))).Methods("GET")
	apiCreate.Handle("/auth/updatedetails", m.Protect(http.HandlerFunc(au.UpdateDetailsHandler))).Methods("PUT")
	apiCreate.Handle("/auth/updatepassword", m.Protect(http.HandlerFunc(au.UpdatePasswordHandler))).Methods("PUT")
	apiCreate.Handle("/auth/forgotpassword", http.HandlerFunc(au.ForgotPasswordHandler)).Methods("POST")
	apiCreate.Handle("/auth/resetpassword/{resettoken}", http.HandlerFunc(au.ResetPasswordHandler)).Methods("PUT")

	apiCreate.Handle("/bootcamps", http.HandlerFunc(b.BootcampsHandler)).Methods("GET")
	apiCreate.Handle("/bootcamps", m.Protect(publisher(http.HandlerFunc(b.CreateBootcampHandler)))).Methods("POST")
	apiCreate.Handle("/bootcamps/radius/{zipcode}/{distance}", http.HandlerFunc(b.BootcampsInRadiusHandler)).Methods("GET")
	apiCreate.Handle("/bootcamps/{id}", http.HandlerFunc(b.BootcampByIDHandler)).Methods("GET")
	apiCreate.Handle("/bootcamps/{id}", m.Protect(publisher(http.HandlerFunc(b.UpdateBootcampHandler)))).Methods("PUT")
	apiCreate.Handle("/bootcamps/{id}", m.Protect(publisher(http.HandlerFunc(b.DeleteBootcampHandler)))).Methods("DELETE")
	apiCreate.Handle("/bootcamps/{id}/photo", m.Protect(publisher(http.HandlerFunc(b.BootcampPhotoUploadHandler)))).Methods("PUT")

	apiCreate.Handle("/bootcamps/{bootcampId}/courses", http.HandlerFunc(c.CoursesHandler)).Methods("GET")
	apiCreate.Handle("/bootcamps/{bootcampId}/courses", m.Protect(publisher(http.HandlerFunc(c.AddCourseHandler)))).Methods("POST")
	apiCreate.Handle("/courses", http.HandlerFunc(c.CoursesHandler)).Methods("GET")
	apiCreate.Handle("/courses/{id}", http.HandlerFunc(c.CourseByIDHandler)).Methods("GET")
	apiCreate.Handle("/courses/{id}", m.Protect(publisher(http.HandlerFunc(c.UpdateCourseHandler)))).Methods("PUT")
	apiCreate.Handle("/courses/{id}", m.Protect(publisher(http.HandlerFunc(c.DeleteCourseHandler)))).Methods("DELETE")

	apiCreate.Handle("/bootcamps/{bootcampId}/reviews", http.HandlerFunc(rv.ReviewsHandler)).Methods("GET")
	apiCreate.Handle("/bootcamps/{bootcampId}/reviews", m.Protect(reviewer(http.HandlerFunc(rv.AddReviewHandler)))).Methods("POST")
	apiCreate.Handle("/reviews", http.HandlerFunc(rv.ReviewsHandler)).Methods("GET")
	apiCreate.Handle("/reviews/{id}", http.HandlerFunc(rv.ReviewByIDHandler)).Methods("GET")
	apiCreate.Handle("/reviews/{id}", m.Protect(reviewer(http.HandlerFunc(rv.UpdateReviewHandler)))).Methods("PUT")
	apiCreate.Handle("/reviews/{id}", m.Protect(reviewer(http.HandlerFunc(rv.DeleteReviewHandler)))).Methods("DELETE")

	apiCreate.Handle("/users", m.Protect(admin(http.HandlerFunc(u.UsersHandler)))).Methods("GET")
	apiCreate.Handle("/users", m.Protect(admin(http.HandlerFunc(u.CreateUserHandler)))).Methods("POST")
	apiCreate.Handle("/users/{id}", m.Protect(admin(http.HandlerFunc(u.UserByIDHandler)))).Methods("GET")
	apiCreate.Handle("/users/{id}", m.Protect(admin(http.HandlerFunc(u.UpdateUserHandler)))).Methods("PUT")
	apiCreate.Handle("/users/{id}", m.Protect(admin(http.HandlerFunc(u.DeleteUserHandler)))).Methods("DELETE")

	a.Scheduler = scheduler.NewScheduler(uDB, bDB, cDB, rDB)

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	ctx, cancel := api.WithJobTimeout(context.Background())
	defer cancel()

	if err = client.Connect(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.client = client
	a.dbHelper = databases.NewDatabase(a.Config, client)
	zap.S().Info("devcamper-api has connected to the database")

	if err = databases.EnsureIndexes(ctx, a.dbHelper); err != nil {
		zap.S().With(err).Error("failed to create indexes")
		return err
	}

	if a.Geocoder, err = geocoder.NewGoogle(a.Config.GeocoderAPIKey); err != nil {
		return err
	}
	a.Mailer = mailer.NewSendGrid(a.Config.SendGridAPIKey, a.Config.FromName, a.Config.FromEmail)
	if a.Photos, err = storage.New(a.Config); err != nil {
		return fmt.Errorf("failed to set up photo storage: %w", err)
	}
	a.Tokens = api.NewTokenIssuer(a.Config.JWTSecret, a.Config.JWTExpire)

	// initialize api router
	a.initializeRoutes()
	a.Scheduler.Start()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// Close stops background work and disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.cancel != nil {
		a.cancel()
	}
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, models.HealthCheckResponse{
		Alive: true,
	})
}
