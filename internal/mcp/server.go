package mcp

import (
	"bufio"
	"encoding/json"
	"io"
	"log"
)

// Server читает построчные JSON-RPC сообщения из потока и пишет ответы.
// Используется поверх stdin/stdout в режиме MCP.
type Server struct {
	handler *Handler
}

func NewServer(handler *Handler) *Server {
	return &Server{handler: handler}
}

func (s *Server) ProcessStream(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Ошибка разбора запроса: %v", err)
			resp := &Response{
				JSONRPC: "2.0",
				Error: &JSONRPCError{
					Code:    CodeParseError,
					Message: "Parse error",
				},
			}
			if err := encoder.Encode(resp); err != nil {
				return err
			}
			continue
		}

		// уведомления без id ответа не требуют
		if req.ID == nil && req.Method != "ping" {
			s.handler.Handle(&req)
			continue
		}

		resp := s.handler.Handle(&req)
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}

	return scanner.Err()
}
