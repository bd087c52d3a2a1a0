package observers

import (
	"context"
	"fmt"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/tool"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"
)

// newToolHandler builds a typed ToolCallbackHandler (not yet wrapped).
// The catalog tools are invoke-only, so no stream handler is registered.
func newToolHandler() *callbackHelper.ToolCallbackHandler {
	return &callbackHelper.ToolCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *tool.CallbackInput) context.Context {
			// Basic visibility for catalog tool starts; keep stdout for now
			fmt.Printf("[TOOL START] %s input=%+v\n", info.Name, input.ArgumentsInJSON)
			return ctx
		},
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *tool.CallbackOutput) context.Context {
			fmt.Printf("[TOOL END] %s output=%+v\n", info.Name, output.Response)
			return ctx
		},
		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			fmt.Printf("Tool execution failed with error: %v\n", err)
			return ctx
		},
	}
}

// NewToolCallbacks constructs a callbacks.Handler that logs tool lifecycle events.
// Attach it via compose.WithCallbacks(...) when invoking or compiling the graph.
func NewToolCallbacks() einocb.Handler {
	return callbackHelper.NewHandlerHelper().
		Tool(newToolHandler()).
		Handler()
}
