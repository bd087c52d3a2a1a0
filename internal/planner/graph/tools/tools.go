package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/strathwell/planner-engine/internal/planner/model"
)

// Tool names exposed to the suggestion model.
const (
	ToolSearchVenues   = "search_venues"
	ToolSearchServices = "search_services"
)

// GetQueryTools returns the catalog lookup tools bound to the given repository.
func GetQueryTools(repo model.CatalogRepository) []tool.BaseTool {
	return []tool.BaseTool{
		NewSearchVenuesTool(repo),
		NewSearchServicesTool(repo),
	}
}

// GetToolInfos collects ToolInfo from the tools for model binding.
func GetToolInfos(ctx context.Context, ts []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(ts))
	for _, t := range ts {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
