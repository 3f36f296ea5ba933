// Command kiaro-server exposes the kiaro cipher as a JSON REST API.
//
// Endpoints:
//
//	POST /api/encrypt   body: {"text":"...", "times":n}
//	POST /api/decrypt   body: {"text":"...", "times":n}
//	GET  /api/healthz
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"
	"gopkg.in/yaml.v3"

	kiaro "github.com/vecioluz/kiaro-cipher"
)

// config is the optional yaml server configuration. Flags override the
// file; the file overrides the defaults.
type config struct {
	Addr           string   `yaml:"addr"`
	DataDir        string   `yaml:"data_dir"`
	DBPath         string   `yaml:"db_path"`
	DebugTruncate  int      `yaml:"debug_truncate"`
	ElisionGuard   bool     `yaml:"elision_guard"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Verbose        bool     `yaml:"verbose"`
}

func loadConfig(path string) (config, error) {
	cfg := config{
		Addr:    ":8080",
		DataDir: "data",
	}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ---- JSON types -----------------------------------------------------------

type transformRequest struct {
	Text  string `json:"text"`
	Times int    `json:"times,omitempty"`
}

type transformResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers ---------------------------------------------------------------

func handleTransform(fn func(string, int) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req transformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		writeJSON(w, http.StatusOK, transformResponse{Text: fn(req.Text, req.Times)})
	}
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- main -------------------------------------------------------------------

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	dataDir := flag.String("data", "", "path to kiaro data directory (overrides config)")
	dbPath := flag.String("db", "", "path to SQLite lexicon database (overrides config)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	var lex kiaro.Lexicon
	if cfg.DBPath != "" {
		log.Printf("loading lexicon from %s …", cfg.DBPath)
		lex, err = kiaro.LoadLexiconDB(cfg.DBPath)
	} else {
		log.Printf("loading lexicon from %s …", cfg.DataDir)
		lex, err = kiaro.LoadLexicon(cfg.DataDir)
	}
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}

	lex.DebugTruncate = cfg.DebugTruncate
	lex.ElisionGuard = cfg.ElisionGuard
	if cfg.Verbose {
		lex.Debug = func(msg string) { log.Printf("kiaro: %s", msg) }
	}
	cipher := kiaro.New(lex)
	log.Printf("lexicon loaded: %d encrypt entries, %d forms",
		len(lex.EncryptMap), len(lex.FormToLemmaTags))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/encrypt", handleTransform(cipher.EncryptTimes))
	mux.HandleFunc("/api/decrypt", handleTransform(cipher.DecryptTimes))
	mux.HandleFunc("/api/healthz", handleHealthz)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
