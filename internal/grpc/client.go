package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"calctool/internal/calculator"
	pb "calctool/proto"
)

// EvaluatorClient представляет gRPC клиент сервиса вычисления.
// Реализует тот же интерфейс, что и локальный вычислитель, поэтому
// HTTP-слой не различает локальное и удаленное вычисление.
type EvaluatorClient struct {
	client pb.EvaluatorClient
	conn   *grpc.ClientConn
}

// NewEvaluatorClient создает новый экземпляр gRPC клиента
func NewEvaluatorClient(serverAddr string) (*EvaluatorClient, error) {
	conn, err := grpc.Dial(
		serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(16*1024*1024), // 16MB
			grpc.MaxCallSendMsgSize(16*1024*1024), // 16MB
		),
	)
	if err != nil {
		return nil, err
	}

	return NewEvaluatorClientFromConn(conn), nil
}

// NewEvaluatorClientFromConn оборачивает уже установленное соединение
func NewEvaluatorClientFromConn(conn *grpc.ClientConn) *EvaluatorClient {
	return &EvaluatorClient{
		client: pb.NewEvaluatorClient(conn),
		conn:   conn,
	}
}

// Close закрывает соединение с сервером
func (c *EvaluatorClient) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// Evaluate отправляет выражение на удаленное вычисление и
// восстанавливает типизированные ошибки контракта из классификации
// в ответе
func (c *EvaluatorClient) Evaluate(req calculator.Request) (calculator.Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := c.client.Evaluate(ctx, &pb.EvaluateRequest{Expression: req.Expression})
	if err != nil {
		return calculator.Result{}, fmt.Errorf("evaluate rpc: %w", err)
	}

	if resp.GetErrorKind() != "" {
		return calculator.Result{}, remoteError(req.Expression, resp.GetErrorKind(), resp.GetErrorMessage())
	}

	return calculator.Result{Result: resp.GetResult()}, nil
}

func remoteError(expression, kind, message string) error {
	switch kind {
	case ErrorKindValidation:
		return calculator.ErrEmptyExpression
	case ErrorKindParse:
		return &calculator.ParseError{Expression: expression, Err: errors.New(message)}
	case ErrorKindEval:
		return &calculator.EvalError{Expression: expression, Err: errors.New(message)}
	}
	return errors.New(message)
}
