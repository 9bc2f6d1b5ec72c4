// Command server exposes the Na'vi sentence analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?sentence=<text>[&verbose=true]
//	POST /api/parse/batch   body: {"sentences":["...", ...]}
//	GET  /api/lookup?word=<word>
//	GET  /api/declension?noun=<noun>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/tslamyu"
	"github.com/cours-de-latin/tslamyu/internal/app"
	"github.com/cours-de-latin/tslamyu/internal/config"
	"github.com/cours-de-latin/tslamyu/internal/logging"
	"github.com/cours-de-latin/tslamyu/lexicon"
)

// ---- JSON response types ------------------------------------------------

type resultJSON struct {
	Tree        tslamyu.SyntaxTreeView `json:"tree"`
	Penalty     int                    `json:"penalty"`
	Violations  []string               `json:"errors,omitempty"`
	Translation string                 `json:"translation,omitempty"`
}

type parseResponse struct {
	Sentence     string          `json:"sentence"`
	Correct      bool            `json:"correct"`
	LexingErrors []string        `json:"lexing_errors,omitempty"`
	Notes        []string        `json:"notes,omitempty"`
	Results      []resultJSON    `json:"results"`
	Errors       []string        `json:"errors,omitempty"`
	Translations []string        `json:"translations,omitempty"`
	ParseError   *parseErrorJSON `json:"parse_error,omitempty"`
}

type parseErrorJSON struct {
	Message  string `json:"message"`
	Word     string `json:"word"`
	Position int    `json:"position"`
}

type batchResponse struct {
	Results []parseResponse `json:"results"`
}

type analysisJSON struct {
	Word         string   `json:"word"`
	Headword     string   `json:"headword"`
	PartOfSpeech string   `json:"type"`
	Categories   []string `json:"categories,omitempty"`
	Case         string   `json:"case,omitempty"`
	Attachment   string   `json:"attachment,omitempty"`
	Gloss        string   `json:"translation"`
}

type lookupResponse struct {
	Word     string         `json:"word"`
	Analyses []analysisJSON `json:"analyses"`
}

type declensionResponse struct {
	Noun  string              `json:"noun"`
	Type  string              `json:"type"`
	Cases []string            `json:"cases"`
	Forms map[string][]string `json:"forms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

// decliner builds case tables. Only the local dictionary offers them.
type decliner interface {
	Declension(word string) *lexicon.Declension
}

func toParseResponse(a *tslamyu.Analyzer, sentence string, rep *tslamyu.Report, err error) parseResponse {
	out := parseResponse{Sentence: sentence, Results: []resultJSON{}}
	if rep != nil {
		out.LexingErrors = rep.LexingErrors()
		out.Notes = rep.Diagnostics.Notes
		out.Correct = rep.WellFormed
		out.Errors = rep.Selection.Violations
		out.Translations = rep.Selection.Translations
		for _, r := range rep.Results {
			out.Results = append(out.Results, resultJSON{
				Tree:        tslamyu.Project(r),
				Penalty:     r.Penalty,
				Violations:  r.Violations,
				Translation: a.Translate(r.Tree),
			})
		}
	}
	var perr *tslamyu.ParseError
	if errors.As(err, &perr) {
		out.ParseError = &parseErrorJSON{Message: perr.Error(), Word: perr.Word, Position: perr.Position}
	}
	return out
}

func toAnalysisJSON(a tslamyu.LexicalAnalysis) analysisJSON {
	out := analysisJSON{
		Word:         a.Surface,
		Headword:     a.Headword,
		PartOfSpeech: string(a.PartOfSpeech),
		Case:         a.CaseAffix(),
		Attachment:   string(a.Attachment),
		Gloss:        tslamyu.ShortestGloss(a),
	}
	for _, c := range tslamyu.Classify(a).Slice() {
		out.Categories = append(out.Categories, c.String())
	}
	return out
}

// statusFor maps an analysis error to an HTTP status.
func statusFor(err error) int {
	var (
		perr *tslamyu.ParseError
		lerr *tslamyu.LookupError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &perr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &lerr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleParse(a *tslamyu.Analyzer) http.HandlerFunc {
	verbose := a.WithVerbose(true)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		sentence := r.URL.Query().Get("sentence")
		if sentence == "" {
			writeError(w, http.StatusBadRequest, "missing 'sentence' query parameter")
			return
		}
		an := a
		if v, _ := strconv.ParseBool(r.URL.Query().Get("verbose")); v {
			an = verbose
		}

		rep, err := an.Analyze(r.Context(), sentence)
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, status, toParseResponse(an, sentence, rep, err))
	}
}

func handleParseBatch(a *tslamyu.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Sentences []string `json:"sentences"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Sentences) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentences' list")
			return
		}

		outcomes, err := a.AnalyzeBatch(r.Context(), body.Sentences)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		out := batchResponse{Results: make([]parseResponse, 0, len(outcomes))}
		for _, o := range outcomes {
			if statusFor(o.Err) >= http.StatusInternalServerError {
				resp := parseResponse{Sentence: o.Sentence, Results: []resultJSON{}, Errors: []string{o.Err.Error()}}
				out.Results = append(out.Results, resp)
				continue
			}
			out.Results = append(out.Results, toParseResponse(a, o.Sentence, o.Report, o.Err))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleLookup(lookup tslamyu.Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		analyses, err := lookup.Lookup(r.Context(), word)
		if err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		out := lookupResponse{Word: word, Analyses: make([]analysisJSON, 0, len(analyses))}
		for _, an := range analyses {
			out.Analyses = append(out.Analyses, toAnalysisJSON(an))
		}
		status := http.StatusOK
		if len(analyses) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, out)
	}
}

func handleDeclension(d decliner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		if d == nil {
			writeError(w, http.StatusNotImplemented, "declension tables need the local dictionary")
			return
		}
		noun := r.URL.Query().Get("noun")
		if noun == "" {
			writeError(w, http.StatusBadRequest, "missing 'noun' query parameter")
			return
		}
		table := d.Declension(noun)
		if table == nil {
			writeError(w, http.StatusNotFound, fmt.Sprintf("noun %q not found", noun))
			return
		}
		writeJSON(w, http.StatusOK, declensionResponse{
			Noun:  table.Entry.Headword,
			Type:  string(table.Entry.POS),
			Cases: table.Cases,
			Forms: table.Forms,
		})
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withRequestLog tags each request with an ID and logs its outcome.
func withRequestLog(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}

func newHandler(a *app.App, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse/batch", handleParseBatch(a.Analyzer))
	mux.HandleFunc("/api/parse", handleParse(a.Analyzer))
	mux.HandleFunc("/api/lookup", handleLookup(a.Lookup))
	var d decliner
	if a.Dictionary != nil {
		d = a.Dictionary
	}
	mux.HandleFunc("/api/declension", handleDeclension(d))

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return withRequestLog(a.Logger, c.Handler(mux))
}

// ---- main ---------------------------------------------------------------

func main() {
	configPath := flag.String("config", "tslamyu.yaml", "path to the configuration file")
	dataDir := flag.String("data", "", "path to the dictionary data directory (overrides config)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	if err := run(*configPath, *dataDir, *addr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, dataDir, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Lexicon.DataDir = dataDir
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a, err := app.Build(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newHandler(a, cfg.Server.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
