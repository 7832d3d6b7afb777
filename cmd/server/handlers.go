package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	mntranslit "github.com/btseee/mn-translit"
	"github.com/btseee/mn-translit/detect"
	"github.com/btseee/mn-translit/translit"
)

// ---- JSON request/response types ----------------------------------------

type transliterateRequest struct {
	Text     string `json:"text"`
	ToScript string `json:"to_script"`
	TransNum bool   `json:"trans_num"`
	NFC      bool   `json:"nfc"`
}

type transliterateResponse struct {
	Text         string        `json:"text"`
	SourceScript detect.Script `json:"source_script"`
}

type numberToWordsResponse struct {
	N      int64             `json:"n"`
	Words  string            `json:"words"`
	Script mntranslit.Script `json:"script"`
}

type wordsToNumberResponse struct {
	Text   string            `json:"text"`
	N      int64             `json:"n"`
	Script mntranslit.Script `json:"script"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFailure maps library errors to a status code.
func writeFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, mntranslit.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// resolveScript parses a script parameter. "auto" and the empty string pick
// the script opposite to the one detected in text, falling back to fallback.
func resolveScript(name, text string, fallback mntranslit.Script) (mntranslit.Script, detect.Script, error) {
	src := detect.Detect(text).Script
	if name == "" || strings.EqualFold(name, "auto") {
		to := src.Opposite()
		if to == detect.ScriptUnknown {
			to = fallback
		}
		return to, src, nil
	}
	to, err := mntranslit.ParseScript(name)
	return to, src, err
}

// ---- handlers -----------------------------------------------------------

func handleTransliterate(maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body transliterateRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&body); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", maxBody))
				return
			}
			writeError(w, http.StatusBadRequest, "body must be JSON with 'text' and 'to_script' fields")
			return
		}

		text := body.Text
		if body.NFC {
			text = translit.Normalize(text)
		}
		to, src, err := resolveScript(body.ToScript, text, mntranslit.Cyrillic)
		if err != nil {
			writeFailure(w, err)
			return
		}
		out, err := mntranslit.TransliterateTo(text, to, body.TransNum)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, transliterateResponse{Text: out, SourceScript: src})
	}
}

func handleNumberToWords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	raw := q.Get("n")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing 'n' query parameter")
		return
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("'n' must be an integer: %q", raw))
		return
	}
	script := mntranslit.Cyrillic
	if s := q.Get("script"); s != "" {
		if script, err = mntranslit.ParseScript(s); err != nil {
			writeFailure(w, err)
			return
		}
	}

	words, err := mntranslit.NumberToWordsIn(n, script)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, numberToWordsResponse{N: n, Words: words, Script: script})
}

func handleWordsToNumber(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	text := q.Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return
	}

	// The words are read in the script they are written in, so detection
	// picks the source script directly rather than its opposite.
	script := detect.Detect(text).Script
	if script == detect.ScriptUnknown {
		script = mntranslit.Cyrillic
	}
	if s := q.Get("script"); s != "" {
		var err error
		if script, err = mntranslit.ParseScript(s); err != nil {
			writeFailure(w, err)
			return
		}
	}

	n, err := mntranslit.WordsToNumberIn(text, script)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wordsToNumberResponse{Text: text, N: n, Script: script})
}

func handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, detect.Detect(r.URL.Query().Get("text")))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- wiring -------------------------------------------------------------

// newHandler builds the API mux wrapped in CORS and request logging.
func newHandler(cfg *Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transliterate", handleTransliterate(cfg.MaxBodyBytes))
	mux.HandleFunc("/api/number-to-words", handleNumberToWords)
	mux.HandleFunc("/api/words-to-number", handleWordsToNumber)
	mux.HandleFunc("/api/detect", handleDetect)
	mux.HandleFunc("/healthz", handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return logRequests(logger, c.Handler(mux))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}
