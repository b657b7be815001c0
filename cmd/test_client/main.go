package main

import (
	"context"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "careerscout-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testCareerResearch(ctx, session)
	testTrendAnalyzer(ctx, session)
	testJobMatcher(ctx, session)
	testCoach(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}

	for _, tool := range result.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println("tools/list passed")
}

func testCareerResearch(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: career_research")

	params := &mcp.CallToolParams{
		Name: "career_research",
		Arguments: map[string]any{
			"query":  "Engineer",
			"skills": []string{"Python", "SQL", "Docker"},
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("career_research failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("career_research passed")
}

func testTrendAnalyzer(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: trend_analyzer")

	params := &mcp.CallToolParams{
		Name: "trend_analyzer",
		Arguments: map[string]any{
			"query": "",
			"top_k": 5,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("trend_analyzer failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("trend_analyzer passed")
}

func testJobMatcher(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: job_matcher")

	params := &mcp.CallToolParams{
		Name: "job_matcher",
		Arguments: map[string]any{
			"query":  "Developer",
			"skills": []string{"JavaScript", "React"},
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("job_matcher failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("job_matcher passed")
}

func testCoach(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: recommend_courses")

	params := &mcp.CallToolParams{
		Name: "recommend_courses",
		Arguments: map[string]any{
			"goal": "full stack developer",
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("recommend_courses failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("recommend_courses passed")
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
}
