package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"paygate/config"
	"paygate/entity"
	"paygate/services"
)

const (
	healthCheck   = "/"
	createPayment = "/api/create-payment"

	healthMessage = "Payment Server is running"
	maxBodySize   = 1 << 20
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf:   conf,
		logger: newLogger("server", zap.NewNop(), nil),
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	router.PanicHandler = server.recoverPanic

	server.httpServer = &http.Server{
		Handler:           server.withCors(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.GET(healthCheck, s.healthCheck)
	router.POST(createPayment, s.createPayment)
}

func (s *Server) withCors(handler http.Handler) http.Handler {
	origins := []string{"*"}
	if s.conf != nil && len(s.conf.Cors.AllowedOrigins) > 0 {
		origins = s.conf.Cors.AllowedOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(handler)
}

// Handler exposes the routed handler, CORS included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, healthMessage)
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Add request ID for tracing
	ctx := WithRequestIDFrom(r)
	reqID := GetRequestID(ctx)
	w.Header().Set(requestIDHeader, reqID)

	request, err := s.readTradeRequest(w, r)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] create payment: read request: %v", reqID, err))
		s.writeJSON(w, http.StatusBadRequest, entity.ErrorResponse{Error: msgInvalidBody})
		return
	}

	payload, err := s.payments.CreatePayment(ctx, request)
	if err != nil {
		var validationError *ValidationError
		if errors.As(err, &validationError) {
			s.logger.Warn(fmt.Sprintf("[%s] create payment: %v", reqID, err))
			s.writeJSON(w, http.StatusBadRequest, entity.ErrorResponse{Error: validationError.Message})
			return
		}
		s.logger.Error(fmt.Sprintf("[%s] create payment", reqID), err)
		s.writeJSON(w, http.StatusInternalServerError, entity.ErrorResponse{Error: msgInternalServer})
		return
	}

	s.writeJSON(w, http.StatusOK, payload)
}

// readTradeRequest decodes a JSON or urlencoded form body; an empty body yields an empty request.
func (s *Server) readTradeRequest(w http.ResponseWriter, r *http.Request) (*entity.TradeRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var request entity.TradeRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		request.Amount = entity.NewAmount(r.PostForm.Get("amount"))
		request.Email = r.PostForm.Get("email")
		request.ItemDesc = r.PostForm.Get("itemDesc")
		request.SessionId = r.PostForm.Get("sessionId")
		return &request, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return &request, nil
	}
	if err = sonic.Unmarshal(body, &request); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return &request, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := sonic.Marshal(value)
	if err != nil {
		s.logger.Error("encode response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err = w.Write(data); err != nil {
		s.logger.Error("write response", err)
	}
}

func (s *Server) recoverPanic(w http.ResponseWriter, r *http.Request, v interface{}) {
	s.logger.Error(fmt.Sprintf("[%s] panic on %s %s", w.Header().Get(requestIDHeader), r.Method, r.URL.Path), fmt.Errorf("panic: %v", v))
	s.writeJSON(w, http.StatusInternalServerError, entity.ErrorResponse{Error: msgInternalServer})
}
