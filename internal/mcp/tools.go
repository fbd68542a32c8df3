// ABOUTME: MCP tool implementations for fitlog.
// ABOUTME: Read-only tools over exercises, PRs, progress, stats, and export.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dateLayout = "2006-01-02"

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercises. Optional filters: muscle_group (chest, back, legs, shoulders, arms, core), query (case-insensitive name substring), custom_only.",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_prs",
		Description: "All-time personal records (heaviest set) per exercise, heaviest first. Optional filter: muscle_group.",
	}, s.handleGetPRs)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_pr",
		Description: "Check whether lifting weight on an exercise would beat its all-time record. Ties are not records.",
	}, s.handleCheckPR)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_weight_progress",
		Description: "Per-day max weight for an exercise, oldest first, with the best day in the window flagged. Optional from_date, to_date (YYYY-MM-DD, inclusive).",
	}, s.handleGetWeightProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Whole-history summary: totals, volume, cardio time and distance, weekly rates, most trained muscle group.",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_cardio_stats",
		Description: "Cardio totals and average duration. Optional type (treadmill, stationary-bike), from_date, to_date (YYYY-MM-DD, inclusive).",
	}, s.handleGetCardioStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_data",
		Description: "Export a full backup snapshot as json (default) or yaml, or a readable markdown training log.",
	}, s.handleExportData)
}

// Tool input types

type listExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group"`
	Query       string `json:"query,omitempty" jsonschema:"Case-insensitive name substring"`
	CustomOnly  bool   `json:"custom_only,omitempty" jsonschema:"Only user-created exercises"`
}

type getPRsInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group"`
}

type checkPRInput struct {
	Exercise string  `json:"exercise" jsonschema:"Exercise ID or prefix"`
	Weight   float64 `json:"weight" jsonschema:"Candidate weight in kg"`
}

type weightProgressInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise ID or prefix"`
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
}

type getStatsInput struct{}

type cardioStatsInput struct {
	Type     string `json:"type,omitempty" jsonschema:"Cardio type (treadmill, stationary-bike)"`
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
}

type exportDataInput struct {
	Format string `json:"format,omitempty" jsonschema:"json, yaml, or markdown"`
}

type checkPROutput struct {
	ExerciseID string   `json:"exerciseId"`
	Weight     float64  `json:"weight"`
	IsPR       bool     `json:"isPR"`
	Current    *float64 `json:"current"`
}

// Tool handlers

func (s *Server) handleListExercises(ctx context.Context, _ *mcp.CallToolRequest, in listExercisesInput) (*mcp.CallToolResult, any, error) {
	var (
		list []*models.Exercise
		err  error
	)
	switch {
	case in.Query != "":
		list, err = s.repo.SearchExercises(ctx, in.Query)
	case in.MuscleGroup != "":
		if !models.IsValidMuscleGroup(in.MuscleGroup) {
			return errorResult("Unknown muscle group: " + in.MuscleGroup), nil, nil
		}
		list, err = s.repo.GetExercisesByMuscleGroup(ctx, models.MuscleGroup(in.MuscleGroup))
	case in.CustomOnly:
		list, err = s.repo.GetCustomExercises(ctx)
	default:
		list, err = s.repo.GetAllExercises(ctx)
	}
	if err != nil {
		return errorResult("Error listing exercises: " + err.Error()), nil, nil
	}

	filtered := list[:0]
	for _, e := range list {
		if in.MuscleGroup != "" && string(e.MuscleGroup) != in.MuscleGroup {
			continue
		}
		if in.CustomOnly && !e.IsCustom {
			continue
		}
		filtered = append(filtered, e)
	}
	return jsonResult(filtered)
}

func (s *Server) handleGetPRs(ctx context.Context, _ *mcp.CallToolRequest, in getPRsInput) (*mcp.CallToolResult, any, error) {
	if in.MuscleGroup != "" {
		if !models.IsValidMuscleGroup(in.MuscleGroup) {
			return errorResult("Unknown muscle group: " + in.MuscleGroup), nil, nil
		}
		prs, err := s.records.PRsByMuscleGroup(ctx, models.MuscleGroup(in.MuscleGroup))
		if err != nil {
			return errorResult("Error fetching records: " + err.Error()), nil, nil
		}
		return jsonResult(prs)
	}

	prs, err := s.records.AllPRs(ctx)
	if err != nil {
		return errorResult("Error fetching records: " + err.Error()), nil, nil
	}
	return jsonResult(prs)
}

func (s *Server) handleCheckPR(ctx context.Context, _ *mcp.CallToolRequest, in checkPRInput) (*mcp.CallToolResult, any, error) {
	id, err := s.repo.ResolveExerciseID(ctx, in.Exercise)
	if err != nil {
		return errorResult("Error resolving exercise: " + err.Error()), nil, nil
	}

	isPR, err := s.records.IsPR(ctx, id, in.Weight)
	if err != nil {
		return errorResult("Error checking record: " + err.Error()), nil, nil
	}
	out := checkPROutput{ExerciseID: id, Weight: in.Weight, IsPR: isPR}

	pr, err := s.records.ExercisePR(ctx, id)
	if err != nil {
		return errorResult("Error checking record: " + err.Error()), nil, nil
	}
	if pr != nil {
		out.Current = &pr.Weight
	}
	return jsonResult(out)
}

func (s *Server) handleGetWeightProgress(ctx context.Context, _ *mcp.CallToolRequest, in weightProgressInput) (*mcp.CallToolResult, any, error) {
	id, err := s.repo.ResolveExerciseID(ctx, in.Exercise)
	if err != nil {
		return errorResult("Error resolving exercise: " + err.Error()), nil, nil
	}
	rng, err := parseRange(in.FromDate, in.ToDate)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	points, err := s.progress.WeightProgress(ctx, id, rng)
	if err != nil {
		return errorResult("Error computing progress: " + err.Error()), nil, nil
	}
	return jsonResult(points)
}

func (s *Server) handleGetStats(ctx context.Context, _ *mcp.CallToolRequest, _ getStatsInput) (*mcp.CallToolResult, any, error) {
	summary, err := s.stats.Stats(ctx)
	if err != nil {
		return errorResult("Error computing stats: " + err.Error()), nil, nil
	}
	return jsonResult(summary)
}

func (s *Server) handleGetCardioStats(ctx context.Context, _ *mcp.CallToolRequest, in cardioStatsInput) (*mcp.CallToolResult, any, error) {
	if in.Type != "" && !models.IsValidCardioType(in.Type) {
		return errorResult("Unknown cardio type: " + in.Type), nil, nil
	}
	rng, err := parseRange(in.FromDate, in.ToDate)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	summary, err := s.stats.CardioStats(ctx, models.CardioType(in.Type), rng)
	if err != nil {
		return errorResult("Error computing cardio stats: " + err.Error()), nil, nil
	}
	return jsonResult(summary)
}

func (s *Server) handleExportData(ctx context.Context, _ *mcp.CallToolRequest, in exportDataInput) (*mcp.CallToolResult, any, error) {
	var (
		raw []byte
		err error
	)
	switch in.Format {
	case "", "json":
		raw, err = s.backup.ExportJSON(ctx)
	case "yaml":
		raw, err = s.backup.ExportYAML(ctx)
	case "markdown":
		var md string
		md, err = s.backup.ExportMarkdown(ctx, nil)
		raw = []byte(md)
	default:
		return errorResult("Unknown format: " + in.Format + " (use json, yaml, or markdown)"), nil, nil
	}
	if err != nil {
		return errorResult("Error exporting data: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// parseRange turns optional YYYY-MM-DD bounds into an inclusive range.
func parseRange(from, to string) (models.DateRange, error) {
	var rng models.DateRange
	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return rng, errors.New("invalid from_date: use YYYY-MM-DD")
		}
		rng.Start = &t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return rng, errors.New("invalid to_date: use YYYY-MM-DD")
		}
		end := t.Add(24*time.Hour - time.Millisecond)
		rng.End = &end
	}
	return rng, nil
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
