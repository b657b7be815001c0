package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// CoachParams is shared by the career coaching tools.
type CoachParams struct {
	Goal string `json:"goal" jsonschema:"Career goal stated by the user, e.g. 'full stack developer'"`
}

// WithCoachTools registers the canned career-guidance tools. These return
// fixed text for a front-end agent to rephrase; they never call an LLM.
func WithCoachTools() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "recommend_courses",
			Description: "Recommend relevant courses based on the user's career goal",
		}, recommendCourses)

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "plan_career_path",
			Description: "Provide a step-by-step career path plan based on the user's goal",
		}, planCareerPath)

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "build_learning_roadmap",
			Description: "Generate a monthly learning roadmap tailored to the career goal",
		}, buildLearningRoadmap)
	}
}

func recommendCourses(ctx context.Context, req *sdkmcp.CallToolRequest, params *CoachParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	goal := ""
	if params != nil {
		goal = strings.ToLower(params.Goal)
	}

	switch {
	case strings.Contains(goal, "full stack"):
		return textResult(
			"To become a full stack developer, here are some recommended courses:\n" +
				"- HTML, CSS, JavaScript\n" +
				"- Front-end frameworks like React or Angular\n" +
				"- Back-end frameworks like Node.js or Django\n" +
				"- Database management with MySQL or MongoDB\n" +
				"- Version control with Git"), nil, nil
	case strings.Contains(goal, "data scientist"):
		return textResult(
			"To become a data scientist, consider courses like:\n" +
				"- Python for Data Science\n" +
				"- Statistics and Probability\n" +
				"- Machine Learning with scikit-learn or TensorFlow\n" +
				"- Data Visualization (matplotlib, seaborn)\n" +
				"- SQL and Big Data tools"), nil, nil
	default:
		return textResult("Please provide a more specific career goal to get tailored course recommendations."), nil, nil
	}
}

func planCareerPath(ctx context.Context, req *sdkmcp.CallToolRequest, params *CoachParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	goal := "your goal"
	if params != nil && params.Goal != "" {
		goal = params.Goal
	}

	return textResult(fmt.Sprintf(
		"Career path for %s:\n"+
			"- Learn the fundamentals\n"+
			"- Build projects\n"+
			"- Contribute to open source\n"+
			"- Network with professionals\n"+
			"- Apply for internships/jobs", goal)), nil, nil
}

func buildLearningRoadmap(ctx context.Context, req *sdkmcp.CallToolRequest, params *CoachParams) (*sdkmcp.CallToolResult, any, error) {
	_ = ctx
	_ = req

	goal := "your goal"
	if params != nil && params.Goal != "" {
		goal = params.Goal
	}

	return textResult(fmt.Sprintf(
		"Learning roadmap for %s:\n"+
			"Month 1: Basics and core skills\n"+
			"Month 2: Intermediate projects\n"+
			"Month 3: Real-world projects & portfolio\n"+
			"Month 4+: Job applications and networking", goal)), nil, nil
}
