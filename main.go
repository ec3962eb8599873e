package main

import (
	auth "Davenport/internal/auth"
	batch "Davenport/internal/calc/batch"
	camselect "Davenport/internal/calc/camselect"
	cutoff "Davenport/internal/calc/cutoff"
	cycletime "Davenport/internal/calc/cycletime"
	jobsetup "Davenport/internal/calc/jobsetup"
	knurl "Davenport/internal/calc/knurl"
	optimizer "Davenport/internal/calc/optimizer"
	quote "Davenport/internal/calc/quote"
	revs "Davenport/internal/calc/revs"
	threading "Davenport/internal/calc/threading"
	catalog "Davenport/internal/catalog"
	repo "Davenport/internal/repo"
	setups "Davenport/internal/setups"
	"context"
	"database/sql"

	"encoding/json"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// loadCatalog reads the machine data workbook named by CATALOG_FILE,
// falling back to the built-in Davenport Model B charts.
func loadCatalog() *catalog.Set {
	path := os.Getenv("CATALOG_FILE")
	if path == "" {
		return catalog.DefaultSet()
	}
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Catalog file %s not readable, using built-in charts: %v", path, err)
		return catalog.DefaultSet()
	}
	defer f.Close()
	set, err := catalog.Load(f)
	if err != nil {
		log.Printf("Catalog file %s not parsable, using built-in charts: %v", path, err)
		return catalog.DefaultSet()
	}
	log.Printf("Loaded catalog from %s", path)
	return set
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	// Load TOKEN_KEY from environment
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	set := loadCatalog()

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}
	setupsH := &setups.SetupsHandler{Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/setups", setupsH.Save).Methods("POST")
	secureApi.HandleFunc("/setups", setupsH.List).Methods("GET")
	secureApi.HandleFunc("/setups/{id:[0-9]+}", setupsH.Get).Methods("GET")
	secureApi.HandleFunc("/setups/{id:[0-9]+}", setupsH.Delete).Methods("DELETE")

	revsH := &revs.Handler{Materials: set.Materials}
	cycletimeH := &cycletime.Handler{Gears: set.Gears}
	camselectH := &camselect.Handler{Cams: set.Cams}
	threadingH := &threading.Handler{Gears: set.Gears}
	knurlH := &knurl.Handler{}
	cutoffH := &cutoff.Handler{}
	optimizerH := &optimizer.Handler{Materials: set.Materials, Gears: set.Gears}
	jobsetupH := &jobsetup.Handler{Materials: set.Materials}
	quoteH := &quote.Handler{Materials: set.Materials}
	batchH := &batch.Handler{Engine: batch.NewEngine(set)}

	secureApi.HandleFunc("/tools/revs/calc", revsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/cycletime/calc", cycletimeH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/camselect/calc", camselectH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/threading/calc", threadingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/knurl/calc", knurlH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/cutoff/calc", cutoffH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/optimizer/calc", optimizerH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/jobsetup/calc", jobsetupH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/quote/calc", quoteH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/batch/run", batchH.Run).Methods("POST")

	secureApi.HandleFunc("/catalog/materials", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(set.Materials.Names())
	}).Methods("GET")
	secureApi.HandleFunc("/catalog/cams", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(set.Cams.All())
	}).Methods("GET")
	secureApi.HandleFunc("/catalog/cycle-rates", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(set.Gears.CycleRates())
	}).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
