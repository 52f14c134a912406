package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the agent")
	testType := flag.String("test", "all", "Test type: all, health, agent-card, pricing, valueprop, examples, speed, message, custom")
	businessIdea := flag.String("idea", "", "Business idea sent as a chat message (for custom test)")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("Growth Toolkit Agent - Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	tests := map[string]func() bool{
		"health":     client.testHealthCheck,
		"agent-card": client.testAgentCard,
		"pricing":    client.testPricing,
		"valueprop":  client.testValueProp,
		"examples":   client.testExamples,
		"speed":      client.testSpeed,
		"message":    client.testMessage,
	}

	switch *testType {
	case "all":
		client.runAllTests()
	case "custom":
		if *businessIdea == "" {
			printError("Business idea is required for custom test. Use -idea flag")
			os.Exit(1)
		}
		if !client.testCustomMessage(*businessIdea) {
			os.Exit(1)
		}
	default:
		fn, ok := tests[*testType]
		if !ok {
			printError(fmt.Sprintf("Unknown test type: %s", *testType))
			fmt.Println("\nAvailable tests: all, health, agent-card, pricing, valueprop, examples, speed, message, custom")
			os.Exit(1)
		}
		if !fn() {
			os.Exit(1)
		}
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Agent Card", tc.testAgentCard},
		{"Pricing Analysis", tc.testPricing},
		{"Value Proposition", tc.testValueProp},
		{"Industry Examples", tc.testExamples},
		{"Speed Report", tc.testSpeed},
		{"Chat Message", tc.testMessage},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testAgentCard() bool {
	printTestHeader("Testing Agent Card Endpoint")

	url := fmt.Sprintf("%s/.well-known/agent.json", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var agentCard map[string]interface{}
	if err := json.Unmarshal(body, &agentCard); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	requiredFields := []string{"name", "description", "version", "capabilities", "endpoints", "skills"}
	for _, field := range requiredFields {
		if _, ok := agentCard[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess("Agent card is valid")
	printJSON(body)
	return true
}

func (tc *TestClient) testPricing() bool {
	printTestHeader("Testing Pricing Analysis")

	params := map[string]interface{}{
		"product_name": "Local Directory Submission Pack",
		"costs": map[string]interface{}{
			"materials": 10,
			"labor":     25,
			"overhead":  5,
		},
		"competitors": []map[string]interface{}{
			{"name": "BrightLocal", "price": 79},
			{"name": "Whitespark", "price": 99},
		},
		"target_profit":    40,
		"value_perception": 7,
		"price_elasticity": 4,
		"market_position":  "mid-market",
	}

	result, ok := tc.call("pricing/analyze", params)
	if !ok {
		return false
	}

	data, ok := artifactData(result)
	if !ok {
		printError("Missing data artifact")
		return false
	}
	strategies, _ := data["recommended_strategies"].([]interface{})
	if len(strategies) == 0 {
		printError("Expected at least one recommended strategy")
		return false
	}

	printSuccess(fmt.Sprintf("Pricing analysis returned %d strategies", len(strategies)))
	printStatusText(result)
	return true
}

func (tc *TestClient) testValueProp() bool {
	printTestHeader("Testing Value Proposition Generation")

	params := map[string]interface{}{
		"business_name":       "LinkLift",
		"industry":            "marketing",
		"target_audience":     "local service businesses",
		"product_description": "done-for-you backlink building",
		"customer_profile": map[string]interface{}{
			"jobs":  []string{"rank higher on Google"},
			"pains": []string{"no time for outreach"},
			"gains": []string{"steady organic leads"},
		},
		"value_map": map[string]interface{}{
			"products":       []string{"monthly link packages"},
			"pain_relievers": []string{"hands-off link placement"},
			"gain_creators":  []string{"monthly ranking reports"},
		},
	}

	result, ok := tc.call("valueprop/generate", params)
	if !ok {
		return false
	}

	data, ok := artifactData(result)
	if !ok {
		printError("Missing data artifact")
		return false
	}
	if headline, _ := data["headline"].(string); headline == "" {
		printError("Expected a headline")
		return false
	}

	printSuccess("Value proposition generated")
	printStatusText(result)
	return true
}

func (tc *TestClient) testExamples() bool {
	printTestHeader("Testing Industry Examples")

	result, ok := tc.call("valueprop/examples", map[string]interface{}{"industry": "ecommerce"})
	if !ok {
		return false
	}

	printSuccess("Industry examples returned")
	printStatusText(result)
	return true
}

func (tc *TestClient) testSpeed() bool {
	printTestHeader("Testing Speed Report")

	result, ok := tc.call("speed/analyze", map[string]interface{}{"url": "example.com"})
	if !ok {
		return false
	}

	data, ok := artifactData(result)
	if !ok {
		printError("Missing data artifact")
		return false
	}
	if grade, _ := data["grade"].(string); grade == "" {
		printError("Expected a grade")
		return false
	}

	printSuccess("Speed report generated")
	printStatusText(result)
	return true
}

func (tc *TestClient) testMessage() bool {
	return tc.testCustomMessage("An SEO directory submission service for local dentists")
}

func (tc *TestClient) testCustomMessage(businessIdea string) bool {
	printTestHeader("Testing Chat Message")
	fmt.Printf("%sBusiness Idea:%s %s\n\n", colorCyan, colorReset, businessIdea)

	params := map[string]interface{}{
		"message": map[string]interface{}{
			"kind": "message",
			"role": "user",
			"parts": []map[string]interface{}{
				{
					"kind": "text",
					"text": businessIdea,
				},
			},
		},
		"configuration": map[string]interface{}{
			"blocking":            true,
			"acceptedOutputModes": []string{"text", "data"},
		},
	}

	result, ok := tc.call("message/send", params)
	if !ok {
		return false
	}

	printSuccess("Message answered")
	printStatusText(result)

	if artifacts, ok := result["artifacts"].([]interface{}); ok && len(artifacts) > 0 {
		fmt.Printf("\n%sArtifacts:%s\n", colorPurple, colorReset)
		artifactsJSON, _ := json.MarshalIndent(artifacts, "", "  ")
		fmt.Println(string(artifactsJSON))
	}
	return true
}

// call posts a JSON-RPC request and returns the result of a completed task.
func (tc *TestClient) call(method string, params interface{}) (map[string]interface{}, bool) {
	url := fmt.Sprintf("%s/a2a/toolkit", tc.baseURL)
	fmt.Printf("POST %s (%s)\n", url, method)

	request := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      fmt.Sprintf("test-%d", time.Now().UnixNano()),
		"method":  method,
		"params":  params,
	}

	jsonData, _ := json.MarshalIndent(request, "", "  ")
	fmt.Printf("%sRequest:%s\n", colorYellow, colorReset)
	fmt.Println(string(jsonData))
	fmt.Println()

	resp, err := tc.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return nil, false
	}

	if errObj, ok := response["error"]; ok {
		printError("Request returned an error")
		errJSON, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Println(string(errJSON))
		return nil, false
	}

	result, ok := response["result"].(map[string]interface{})
	if !ok {
		printError("Invalid result format")
		return nil, false
	}

	status, ok := result["status"].(map[string]interface{})
	if !ok {
		printError("Invalid status format")
		return nil, false
	}

	state, _ := status["state"].(string)
	if state != "completed" {
		printError(fmt.Sprintf("Expected state 'completed', got '%s'", state))
		return nil, false
	}

	return result, true
}

// artifactData returns the structured payload of the first artifact.
func artifactData(result map[string]interface{}) (map[string]interface{}, bool) {
	artifacts, ok := result["artifacts"].([]interface{})
	if !ok || len(artifacts) == 0 {
		return nil, false
	}
	artifact, ok := artifacts[0].(map[string]interface{})
	if !ok {
		return nil, false
	}
	parts, _ := artifact["parts"].([]interface{})
	for _, part := range parts {
		p, ok := part.(map[string]interface{})
		if !ok || p["kind"] != "data" {
			continue
		}
		data, ok := p["data"].(map[string]interface{})
		return data, ok
	}
	return nil, false
}

func printStatusText(result map[string]interface{}) {
	status, _ := result["status"].(map[string]interface{})
	msg, ok := status["message"].(map[string]interface{})
	if !ok {
		return
	}
	parts, ok := msg["parts"].([]interface{})
	if !ok {
		return
	}

	fmt.Printf("\n%sAgent Response:%s\n", colorGreen, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	for _, part := range parts {
		if p, ok := part.(map[string]interface{}); ok {
			if text, ok := p["text"].(string); ok {
				fmt.Println(text)
			}
		}
	}
	fmt.Println(strings.Repeat("=", 80))
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
