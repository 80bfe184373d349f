package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"money-problem/bank"
	"money-problem/domain"
	"money-problem/exchange"
	"money-problem/portfolio"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	router  chi.Router
}

func NewServer(s exchange.Service) *Server {
	server := &Server{
		Service: s,
		router:  chi.NewRouter(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Post("/api/convert", s.convert())
	s.router.Post("/api/evaluate", s.evaluate())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// errorResponse is the body of every failed request
type errorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency domain.Currency `json:"fromCurrency"`
		ToCurrency   domain.Currency `json:"toCurrency"`
		Amount       float64         `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange float64 `json:"exchange"`
		Amount   float64 `json:"amount"`
		Original float64 `json:"original"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		if !req.FromCurrency.Valid() || !req.ToCurrency.Valid() {
			writeJSON(rw, http.StatusBadRequest, errorResponse{Error: "missing currency"})
			return
		}

		result, err := s.Service.Convert(r.Context(), domain.New(req.Amount, req.FromCurrency), req.ToCurrency)
		if err != nil {
			writeError(rw, err)
			return
		}

		writeJSON(rw, http.StatusOK, response{
			Exchange: result.Rate,
			Amount:   result.Money.Amount,
			Original: req.Amount,
		})
	}
}

// evaluate produces HTTP handler for portfolio evaluations
func (s *Server) evaluate() http.HandlerFunc {

	type request struct {
		ToCurrency domain.Currency `json:"toCurrency"`
		Entries    []domain.Money  `json:"entries"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(rw, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		if !req.ToCurrency.Valid() {
			writeJSON(rw, http.StatusBadRequest, errorResponse{Error: "missing toCurrency"})
			return
		}
		for _, m := range req.Entries {
			if !m.Currency.Valid() {
				writeJSON(rw, http.StatusBadRequest, errorResponse{Error: "missing entry currency"})
				return
			}
		}

		total, err := s.Service.Evaluate(r.Context(), req.Entries, req.ToCurrency)
		if err != nil {
			writeError(rw, err)
			return
		}

		writeJSON(rw, http.StatusOK, total)
	}
}

// writeError maps domain errors to HTTP status codes
func writeError(rw http.ResponseWriter, err error) {
	var missing *portfolio.MissingExchangeRatesError
	var noRate *bank.NoRateFoundError
	switch {
	case errors.As(err, &missing):
		pairs := make([]string, len(missing.Missing))
		for i, p := range missing.Missing {
			pairs[i] = p.String()
		}
		writeJSON(rw, http.StatusUnprocessableEntity, errorResponse{Error: missing.Error(), Missing: pairs})
	case errors.As(err, &noRate):
		writeJSON(rw, http.StatusUnprocessableEntity, errorResponse{Error: noRate.Error(), Missing: []string{noRate.Pair.String()}})
	default:
		writeJSON(rw, http.StatusBadGateway, errorResponse{Error: "failed conversion"})
	}
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(v)
}
