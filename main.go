package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/gcal"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/handlers"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/llm"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/middleware"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/mlmodel"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/routes"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/store"
)

func main() {

	config.LoadEnv()
	config.InitLogger()

	dataDir := config.GetEnv("DATA_DIR", "datos_usuario")
	st, err := store.New(dataDir)
	if err != nil {
		config.Logger.Fatal("Failed to initialize data store: ", err)
	}

	model := mlmodel.New(filepath.Join(dataDir, "historial_estudio.csv"))
	if err := model.Train(); err != nil {
		config.Logger.Warn("Initial model training failed: ", err)
	}

	client, err := llm.NewClient(context.Background())
	if err != nil {
		config.Logger.Fatal("Failed to initialize Gemini client: ", err)
	}

	h := handlers.New(st, client, model, gcal.New(st))

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, h)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := config.GetEnv("PORT", "8080")
	config.Logger.Info("Server is running on port ", port)
	config.Logger.Fatal(http.ListenAndServe(":"+port, handler))
}
