// Package mcp exposes the card compiler over the Model Context Protocol so
// agents can compile rules text without shelling out to the CLI.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/forgec/internal/card"
	"github.com/peterkuimelis/forgec/internal/compiler"
	"github.com/peterkuimelis/forgec/internal/forge"
)

// comp is the compiler shared by all tool calls. Compilation is stateless
// per card, so one instance serves the whole stdio session.
var comp = compiler.New()

// SetCompiler replaces the shared compiler, e.g. with config-extended
// rule tables. Called by main before serving.
func SetCompiler(c *compiler.Compiler) {
	comp = c
}

// RegisterTools adds all compiler tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(compileCardTool(), handleCompileCard)
	s.AddTool(tokenizeManaCostTool(), handleTokenizeManaCost)
	s.AddTool(cardFilenameTool(), handleCardFilename)
}

// --- Tool definitions ---

func compileCardTool() mcp.Tool {
	return mcp.NewTool("compile_card",
		mcp.WithDescription("Compile a card's rules text into a Forge card script. "+
			"Returns the full script: header directives, ability lines, support variables, and Oracle text."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The card's rules text")),
		mcp.WithString("name", mcp.Description("Card name (default 'Unnamed Card')")),
		mcp.WithString("mana_cost", mcp.Description("Mana cost in Cockatrice notation, e.g. '1BB' or '2U/B'")),
		mcp.WithString("type", mcp.Description("Type line, e.g. 'Creature - Human Wizard'")),
		mcp.WithString("pt", mcp.Description("Power/toughness, e.g. '2/2'")),
		mcp.WithString("loyalty", mcp.Description("Starting loyalty for planeswalkers")),
	)
}

func tokenizeManaCostTool() mcp.Tool {
	return mcp.NewTool("tokenize_mana_cost",
		mcp.WithDescription("Convert a Cockatrice mana cost string to Forge's space-separated symbols, e.g. '2U/B' -> '2 U/B'."),
		mcp.WithString("cost", mcp.Required(), mcp.Description("Mana cost in Cockatrice notation")),
	)
}

func cardFilenameTool() mcp.Tool {
	return mcp.NewTool("card_filename",
		mcp.WithDescription("Derive the script filename and per-letter subdirectory for a card name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Card name")),
	)
}

// --- Tool handlers ---

func handleCompileCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	name := request.GetString("name", "Unnamed Card")

	c := card.Card{
		Name:     name,
		ManaCost: request.GetString("mana_cost", ""),
		Type:     request.GetString("type", ""),
		PT:       request.GetString("pt", ""),
		Loyalty:  request.GetString("loyalty", ""),
		Text:     card.DecodeEntities(text),
	}
	script := comp.Compile(c.Text)
	return mcp.NewToolResultText(forge.Render(c, script)), nil
}

func handleTokenizeManaCost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cost := request.GetString("cost", "")
	if cost == "" {
		return mcp.NewToolResultError("cost must not be empty"), nil
	}
	return mcp.NewToolResultText(card.TokenizeManaCost(cost)), nil
}

func handleCardFilename(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name must not be empty"), nil
	}
	stem := card.Filename(name)
	return mcp.NewToolResultText(card.Subdir(stem) + "/" + stem + ".txt"), nil
}
