package a2a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/agent"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/export"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/models"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/pricing"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/profiler"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/speed"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/valueprop"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const suggestTimeout = 30 * time.Second

// ideaBusinessName is used when a value proposition starts from free text.
const ideaBusinessName = "Your business"

type A2AHandler struct {
	suggester profiler.Suggester
	generator *valueprop.Generator
	logger    *zap.Logger
}

// NewA2AHandler wires the toolkit engines behind the JSON-RPC endpoint. A nil
// suggester falls back to the built-in industry examples.
func NewA2AHandler(suggester profiler.Suggester, generator *valueprop.Generator, logger *zap.Logger) *A2AHandler {
	if suggester == nil {
		suggester = profiler.ExampleSuggester{}
	}
	if generator == nil {
		generator = valueprop.NewGenerator(nil)
	}
	return &A2AHandler{
		suggester: suggester,
		generator: generator,
		logger:    logger,
	}
}

// HandleToolkit dispatches JSON-RPC requests to the toolkit engines.
func (h *A2AHandler) HandleToolkit(c *gin.Context) {
	var rpcReq JSONRPCRequest
	if err := c.ShouldBindBodyWith(&rpcReq, binding.JSON); err != nil {
		h.logger.Warn("failed to decode request as JSON-RPC, trying direct message", zap.Error(err))
		h.handleDirectMessage(c)
		return
	}

	// A bare MessageParams body decodes into an empty envelope.
	if rpcReq.JSONRPC == "" && rpcReq.Method == "" {
		h.handleDirectMessage(c)
		return
	}

	h.logger.Debug("rpc request",
		zap.String("method", rpcReq.Method),
		zap.ByteString("id", rpcReq.ID),
		zap.ByteString("params", rpcReq.Params))

	if rpcReq.JSONRPC != "2.0" {
		h.logger.Warn("invalid JSON-RPC version", zap.String("jsonrpc", rpcReq.JSONRPC))
		h.sendErrorResponse(c, rpcReq.ID, "Invalid JSON-RPC version", CodeInvalidRequest, nil)
		return
	}

	switch rpcReq.Method {
	case MethodPricingAnalyze:
		h.handlePricing(c, rpcReq)
	case MethodValuePropGenerate:
		h.handleValueProp(c, rpcReq)
	case MethodValuePropExamples:
		h.handleExamples(c, rpcReq)
	case MethodSpeedAnalyze:
		h.handleSpeed(c, rpcReq)
	case MethodMessageSend, MethodAgentTask:
		h.handleTask(c, rpcReq)
	default:
		h.logger.Warn("unknown method", zap.String("method", rpcReq.Method))
		h.sendErrorResponse(c, rpcReq.ID, fmt.Sprintf("Method not found: %s", rpcReq.Method), CodeMethodNotFound, nil)
	}
}

// ServeAgentCard serves the embedded agent card.
func (h *A2AHandler) ServeAgentCard(c *gin.Context) {
	if err := agent.LoadAgentCard(); err != nil {
		h.logger.Error("error loading agent card", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Agent card not available"})
		return
	}
	c.Data(http.StatusOK, "application/json", agent.AgentCardData)
}

func (h *A2AHandler) handlePricing(c *gin.Context, rpcReq JSONRPCRequest) {
	var inputs models.PricingInputs
	if !h.decodeParams(c, rpcReq, &inputs) {
		return
	}

	analysis := pricing.GenerateAnalysis(inputs)
	h.logger.Info("pricing analysis generated",
		zap.String("product", inputs.ProductName),
		zap.Int("strategies", len(analysis.RecommendedStrategies)))

	result := h.createSuccessTaskResult("Pricing Strategy Analysis", export.PricingMarkdown(analysis), analysis)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

func (h *A2AHandler) handleValueProp(c *gin.Context, rpcReq JSONRPCRequest) {
	var inputs models.ValuePropositionInputs
	if !h.decodeParams(c, rpcReq, &inputs) {
		return
	}

	if inputs.CustomerProfile.IsEmpty() {
		idea := inputs.ProductDescription
		if idea == "" {
			idea = inputs.BusinessName
		}
		inputs.CustomerProfile = h.suggestProfile(c.Request.Context(), idea, inputs.Industry)
	}

	vp := h.generator.Generate(inputs)
	h.logger.Info("value proposition generated", zap.String("business", inputs.BusinessName))

	result := h.createSuccessTaskResult("Value Proposition", export.ValuePropositionMarkdown(inputs.BusinessName, vp), vp)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

type examplesParams struct {
	Industry string `json:"industry"`
}

type examplesResult struct {
	Industry   string             `json:"industry"`
	Examples   models.ExampleData `json:"examples"`
	Industries []string           `json:"industries"`
}

func (h *A2AHandler) handleExamples(c *gin.Context, rpcReq JSONRPCRequest) {
	var params examplesParams
	if len(rpcReq.Params) > 0 && !h.decodeParams(c, rpcReq, &params) {
		return
	}

	industry := valueprop.ResolveIndustry(params.Industry)
	res := examplesResult{
		Industry:   industry,
		Examples:   valueprop.ExampleData(industry),
		Industries: valueprop.Industries(),
	}

	result := h.createSuccessTaskResult("Industry Examples", export.ExamplesMarkdown(industry, res.Examples), res)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

type speedParams struct {
	URL string `json:"url" validate:"required"`
}

func (h *A2AHandler) handleSpeed(c *gin.Context, rpcReq JSONRPCRequest) {
	var params speedParams
	if !h.decodeParams(c, rpcReq, &params) {
		return
	}

	report, err := speed.Analyze(params.URL)
	if errors.Is(err, speed.ErrInvalidURL) {
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams, []string{err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("speed analysis failed", zap.Error(err))
		h.sendSuccessResponse(c, rpcReq.ID, h.createStatusTaskResult(StateFailed, "Speed analysis failed. Please try again."))
		return
	}

	result := h.createSuccessTaskResult("Website Speed Report", export.SpeedText(report), report)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

// handleDirectMessage handles a message sent without the JSON-RPC wrapper.
func (h *A2AHandler) handleDirectMessage(c *gin.Context) {
	var msgParams MessageParams
	if err := c.ShouldBindBodyWith(&msgParams, binding.JSON); err != nil {
		h.logger.Warn("failed to parse as direct message", zap.Error(err))
		h.sendErrorResponse(c, nil, "Invalid request format", CodeParseError, nil)
		return
	}

	id, _ := json.Marshal("direct-message")
	h.respondToMessage(c, id, msgParams.Message)
}

func (h *A2AHandler) handleTask(c *gin.Context, rpcReq JSONRPCRequest) {
	var msgParams MessageParams
	if !h.decodeParams(c, rpcReq, &msgParams) {
		return
	}
	h.respondToMessage(c, rpcReq.ID, msgParams.Message)
}

// respondToMessage turns a free-text business idea into a value proposition.
func (h *A2AHandler) respondToMessage(c *gin.Context, id json.RawMessage, msg A2AMessage) {
	idea := h.extractBusinessIdea(msg)
	if idea == "" {
		h.logger.Warn("no business idea found in message")
		result := h.createStatusTaskResult(StateInputRequired, "Please describe your business idea to generate a value proposition.")
		result.History = userHistory(msg)
		h.sendSuccessResponse(c, id, result)
		return
	}

	industry := valueprop.DetectIndustry(idea)
	examples := valueprop.ExampleData(industry)

	inputs := models.ValuePropositionInputs{
		BusinessName:       ideaBusinessName,
		ProductDescription: idea,
		CustomerProfile:    h.suggestProfile(c.Request.Context(), idea, industry),
		ValueMap: models.ValueMap{
			PainRelievers: examples.PainRelievers,
			GainCreators:  examples.GainCreators,
		},
	}
	if industry != valueprop.DefaultIndustry {
		inputs.Industry = industry
	}

	vp := h.generator.Generate(inputs)
	h.logger.Info("value proposition generated from message", zap.String("industry", industry))

	result := h.createSuccessTaskResult("Value Proposition", export.ValuePropositionMarkdown("", vp), vp)
	result.History = userHistory(msg)
	h.sendSuccessResponse(c, id, result)
}

// userHistory records the incoming message on the task. Clients that omit
// the role are treated as the user.
func userHistory(msg A2AMessage) []A2AMessage {
	if msg.Role == "" {
		msg.Role = RoleUser
	}
	if msg.Kind == "" {
		msg.Kind = "message"
	}
	return []A2AMessage{msg}
}

// suggestProfile asks the configured suggester and falls back to the
// industry examples when it fails.
func (h *A2AHandler) suggestProfile(ctx context.Context, idea, industry string) models.CustomerProfile {
	ctx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()

	profile, err := h.suggester.SuggestProfile(ctx, idea, industry)
	switch {
	case err != nil:
		h.logger.Warn("profile suggestion failed, using industry examples", zap.Error(err))
	case profile.IsEmpty():
		h.logger.Warn("profile suggestion was empty, using industry examples")
	default:
		return profile
	}

	profile, _ = profiler.ExampleSuggester{}.SuggestProfile(ctx, idea, industry)
	return profile
}

// decodeParams unmarshals and validates request params, replying with an
// invalid-params error on failure.
func (h *A2AHandler) decodeParams(c *gin.Context, rpcReq JSONRPCRequest, v interface{}) bool {
	if len(rpcReq.Params) == 0 {
		h.sendErrorResponse(c, rpcReq.ID, "Missing parameters", CodeInvalidParams, nil)
		return false
	}
	if err := json.Unmarshal(rpcReq.Params, v); err != nil {
		h.logger.Warn("failed to unmarshal params", zap.Error(err))
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams, []string{err.Error()})
		return false
	}

	if err := models.Validate(v); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams, verr.Fields)
			return false
		}
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams, []string{err.Error()})
		return false
	}
	return true
}

func (h *A2AHandler) extractBusinessIdea(msg A2AMessage) string {
	var texts []string

	for _, part := range msg.Parts {
		switch part.Kind {
		case "text":
			if text, ok := part.Text.(string); ok && strings.TrimSpace(text) != "" {
				texts = append(texts, strings.TrimSpace(text))
			}
		case "data":
			if text := h.latestUserText(part.Data); text != "" {
				texts = append(texts, text)
			}
		}
	}

	return strings.TrimSpace(strings.Join(texts, " "))
}

// latestUserText finds the most recent user request in a data part holding
// conversation history.
func (h *A2AHandler) latestUserText(data interface{}) string {
	var history []map[string]interface{}

	switch v := data.(type) {
	case nil:
		return ""
	case []map[string]interface{}:
		history = v
	case string:
		if err := json.Unmarshal([]byte(v), &history); err != nil {
			h.logger.Debug("failed to unmarshal data part", zap.Error(err))
			return ""
		}
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			h.logger.Debug("failed to marshal data part", zap.Error(err))
			return ""
		}
		if err := json.Unmarshal(raw, &history); err != nil {
			h.logger.Debug("failed to unmarshal data part", zap.Error(err))
			return ""
		}
	}

	for i := len(history) - 1; i >= 0; i-- {
		item := history[i]
		if kind, _ := item["kind"].(string); kind != "text" {
			continue
		}
		text, _ := item["text"].(string)
		text = strings.TrimSpace(strings.NewReplacer("<p>", "", "</p>", "").Replace(text))
		if text == "" || isAgentChatter(text) {
			continue
		}
		return text
	}
	return ""
}

// isAgentChatter matches progress messages echoed back in the history.
func isAgentChatter(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "generating") ||
		strings.Contains(lower, "creating") ||
		strings.Trim(text, ".") == ""
}

func (h *A2AHandler) createSuccessTaskResult(name, text string, data interface{}) TaskResult {
	return TaskResult{
		ID:   uuid.New().String(),
		Kind: "task",
		Status: TaskStatus{
			State:     StateCompleted,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.New().String(),
				Parts: []MessagePart{
					TextPart(text),
				},
			},
		},
		Artifacts: []Artifact{
			{
				ArtifactID: uuid.New().String(),
				Name:       name,
				Parts: []MessagePart{
					TextPart(text),
					DataPart(data),
				},
			},
		},
	}
}

// createStatusTaskResult builds a task with no artifacts whose status
// message explains the state.
func (h *A2AHandler) createStatusTaskResult(state, text string) TaskResult {
	return TaskResult{
		ID:   uuid.New().String(),
		Kind: "task",
		Status: TaskStatus{
			State:     state,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.New().String(),
				Parts: []MessagePart{
					TextPart(text),
				},
			},
		},
	}
}

func (h *A2AHandler) sendSuccessResponse(c *gin.Context, id json.RawMessage, result interface{}) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (h *A2AHandler) sendErrorResponse(c *gin.Context, id json.RawMessage, message string, code int, data interface{}) {
	h.logger.Info("rpc error response", zap.Int("code", code), zap.String("message", message))

	// JSON-RPC errors are sent with 200 OK
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}
