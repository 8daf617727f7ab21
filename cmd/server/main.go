package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"registros/internal/database"
	"registros/internal/handler"
	middleware "registros/internal/midlleware"
	"registros/internal/repository"
	"registros/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	db, err := database.InitDB(database.LoadConfig())
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	defer database.CloseDB(db)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	store := sessions.NewCookieStore(cookieKey())
	manager := session.NewManager()
	banner := handler.NewErrorBanner()

	creds := repository.NewCredentialRepository(db)
	courses := repository.NewCourseRepository(db)

	home := handler.NewHomeHandler(manager, store, banner)
	login := handler.NewLoginHandler(creds, manager, store)
	signup := handler.NewSignupHandler(creds)
	course := handler.NewCourseHandler(courses, banner)

	mux := http.NewServeMux()
	mux.HandleFunc("/", home.Home)
	mux.HandleFunc("/login", login.Login)
	mux.HandleFunc("/signup", signup.Signup)
	mux.HandleFunc("/logout", login.Logout)
	mux.HandleFunc("/index", course.Index)
	mux.HandleFunc("/registros", course.Registros)
	mux.HandleFunc("/cadastro", course.CadastroPage)
	mux.HandleFunc("/inserir", course.Inserir)
	mux.HandleFunc("/editar", course.Editar)
	mux.HandleFunc("/update", course.Update)
	mux.HandleFunc("/delete", course.Delete)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("server started on port %s", port)
	err = http.ListenAndServe(":"+port, middleware.RequireAuth(store, manager, mux))
	if err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// cookieKey returns the cookie-signing key from the environment, or a
// random per-process key. Sessions do not survive a restart anyway, so a
// fresh key only invalidates cookies that are already dead.
func cookieKey() []byte {
	if key := os.Getenv("SESSION_KEY"); key != "" {
		return []byte(key)
	}
	return securecookie.GenerateRandomKey(32)
}
