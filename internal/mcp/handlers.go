package mcp

import (
	"encoding/json"
	"fmt"

	"calctool/internal/calculator"
)

const (
	serverName      = "calctool"
	serverVersion   = "1.0.0"
	protocolVersion = "2024-11-05"
)

// Handler обрабатывает методы MCP. Сервер экспонирует единственный
// инструмент calculator поверх вычислителя выражений.
type Handler struct {
	evaluator *calculator.Evaluator
}

func NewHandler(evaluator *calculator.Evaluator) *Handler {
	return &Handler{evaluator: evaluator}
}

func (h *Handler) Handle(req *Request) *Response {
	resp := &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
	}

	switch req.Method {
	case "initialize":
		resp.Result = h.handleInitialize()
	case "ping":
		resp.Result = map[string]interface{}{}
	case "notifications/initialized":
		resp.Result = map[string]interface{}{}
	case "tools/list":
		resp.Result = h.handleListTools()
	case "tools/call":
		result, err := h.handleCallTool(req)
		if err != nil {
			resp.Error = &JSONRPCError{
				Code:    CodeInvalidParams,
				Message: err.Error(),
			}
		} else {
			resp.Result = result
		}
	default:
		resp.Error = &JSONRPCError{
			Code:    CodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		}
	}

	return resp
}

func (h *Handler) handleInitialize() interface{} {
	return map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    serverName,
			"version": serverVersion,
		},
	}
}

func (h *Handler) handleListTools() interface{} {
	return map[string]interface{}{
		"tools": []map[string]interface{}{
			{
				"name": "calculator",
				"description": "Вычисляет математическое выражение: арифметика, " +
					"тригонометрия, константы pi и e, комплексные числа. " +
					"Примеры: '2 + 2', 'sin(pi/2)', '(3 + 4i) * (2 - 3i)'.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"expression": map[string]interface{}{
							"type":        "string",
							"description": "Выражение для вычисления",
						},
					},
					"required": []string{"expression"},
				},
			},
		},
	}
}

func (h *Handler) handleCallTool(req *Request) (interface{}, error) {
	var params struct {
		Name      string `json:"name"`
		Arguments struct {
			Expression string `json:"expression"`
		} `json:"arguments"`
	}

	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, fmt.Errorf("failed to parse tool call params: %w", err)
	}

	if params.Name != "calculator" {
		return nil, fmt.Errorf("unknown tool: %s", params.Name)
	}

	result, err := h.evaluator.Evaluate(calculator.Request{Expression: params.Arguments.Expression})
	if err != nil {
		// ошибка вычисления — содержимое результата, а не ошибка протокола
		return &ToolResult{
			Content: []ToolContent{{Type: "text", Text: err.Error()}},
			IsError: true,
		}, nil
	}

	return &ToolResult{
		Content: []ToolContent{{Type: "text", Text: result.Result}},
	}, nil
}
