package grpc

import (
	"context"
	"errors"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"calctool/internal/calculator"
	pb "calctool/proto"
)

// Классификация ошибок в ответе сервиса
const (
	ErrorKindValidation = "validation"
	ErrorKindParse      = "parse"
	ErrorKindEval       = "eval"
	ErrorKindInternal   = "internal"
)

// EvaluatorServer реализует gRPC сервис вычисления выражений.
// Сервис без состояния: каждый запрос обрабатывается независимо.
type EvaluatorServer struct {
	pb.UnimplementedEvaluatorServer
	evaluator *calculator.Evaluator
}

// NewEvaluatorServer создает новый экземпляр gRPC сервера
func NewEvaluatorServer(evaluator *calculator.Evaluator) *EvaluatorServer {
	return &EvaluatorServer{evaluator: evaluator}
}

// Evaluate вычисляет выражение из запроса. Ошибки вычисления
// возвращаются в теле ответа с классификацией, а не статусом gRPC.
func (s *EvaluatorServer) Evaluate(ctx context.Context, req *pb.EvaluateRequest) (*pb.EvaluateResponse, error) {
	result, err := s.evaluator.Evaluate(calculator.Request{Expression: req.GetExpression()})
	if err != nil {
		log.Printf("Ошибка вычисления выражения %q: %v", req.GetExpression(), err)
		return &pb.EvaluateResponse{
			ErrorKind:    classifyError(err),
			ErrorMessage: err.Error(),
		}, nil
	}

	return &pb.EvaluateResponse{Result: result.Result}, nil
}

func classifyError(err error) string {
	var parseErr *calculator.ParseError
	var evalErr *calculator.EvalError

	switch {
	case errors.Is(err, calculator.ErrEmptyExpression):
		return ErrorKindValidation
	case errors.As(err, &parseErr):
		return ErrorKindParse
	case errors.As(err, &evalErr):
		return ErrorKindEval
	}
	return ErrorKindInternal
}

// ServerOptions возвращает настройки keepalive и размеров сообщений
func ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.MaxRecvMsgSize(16 * 1024 * 1024), // 16MB
		grpc.MaxSendMsgSize(16 * 1024 * 1024), // 16MB
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     time.Minute,
			MaxConnectionAge:      5 * time.Minute,
			MaxConnectionAgeGrace: 20 * time.Second,
			Time:                  20 * time.Second,
			Timeout:               10 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	}
}

// StartServer запускает gRPC сервер
func StartServer(address string, evaluator *calculator.Evaluator) error {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	s := grpc.NewServer(ServerOptions()...)
	pb.RegisterEvaluatorServer(s, NewEvaluatorServer(evaluator))

	log.Printf("gRPC сервер запущен на %s", address)
	return s.Serve(lis)
}
