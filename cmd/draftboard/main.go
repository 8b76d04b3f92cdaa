package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fpl-draft-board/internal/board"
	"fpl-draft-board/internal/config"
	"fpl-draft-board/internal/fetch"
	"fpl-draft-board/internal/scheduler"
	"fpl-draft-board/internal/store"
)

type LeagueArgs struct {
	LeagueID int  `json:"league_id" jsonschema:"Draft league id (0 = configured default)"`
	Refresh  bool `json:"refresh" jsonschema:"Bypass the cache and refetch"`
}

type TeamBoardArgs struct {
	LeagueID int    `json:"league_id" jsonschema:"Draft league id (0 = configured default)"`
	Team     string `json:"team" jsonschema:"Owner team name (fuzzy matched, required)"`
	Refresh  bool   `json:"refresh" jsonschema:"Bypass the cache and refetch"`
}

type PlayerSearchArgs struct {
	LeagueID int    `json:"league_id" jsonschema:"Draft league id (0 = configured default)"`
	Query    string `json:"query" jsonschema:"Player name to search for (required)"`
	Limit    int    `json:"limit" jsonschema:"Max results (default 5)"`
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via DRAFT_BOARD_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	client := fetch.NewClient(cfg.BaseURL)
	if cfg.RawRoot != "" {
		client.Archive = store.NewJSONStore(cfg.RawRoot)
	}

	cache := board.NewCache(cfg.CacheTTL, clockwork.NewRealClock())
	brd := board.New(client, cache, cfg.OwnershipSource)

	if cfg.RefreshEvery > 0 {
		ref, err := scheduler.New(brd, cfg.LeagueID, cfg.RefreshEvery)
		if err != nil {
			log.Fatal(err)
		}
		ref.Start()
		defer func() {
			if err := ref.Stop(); err != nil {
				slog.Error("error stopping refresher", "error", err)
			}
		}()
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-draft-board",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	fetchBoard := func(ctx context.Context, leagueID int, refresh bool) (*board.Result, error) {
		id := leagueID
		if id == 0 {
			id = cfg.LeagueID
		}
		if id == 0 {
			return nil, fmt.Errorf("league_id is required")
		}
		return brd.Fetch(ctx, id, refresh)
	}

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_board",
		Description: "Full player board: unified table plus per-owner and undrafted partitions",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		res, err := fetchBoard(ctx, args.LeagueID, args.Refresh)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(res)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_board",
		Description: "One owner's player table, matched by team name",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamBoardArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Team) == "" {
			return toolError(fmt.Errorf("team is required")), nil, nil
		}
		res, err := fetchBoard(ctx, args.LeagueID, args.Refresh)
		if err != nil {
			return toolError(err), nil, nil
		}
		name, players, err := matchOwner(res, args.Team)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]any{
			"league_id": res.LeagueID,
			"team":      name,
			"players":   players,
		})
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "undrafted_players",
		Description: "Players owned by no entry, sorted by recent points",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		res, err := fetchBoard(ctx, args.LeagueID, args.Refresh)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]any{
			"league_id": res.LeagueID,
			"players":   res.Undrafted,
		})
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "fixture_difficulty",
		Description: "Blended upcoming-fixture difficulty per club (published rating x opponent form)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		res, err := fetchBoard(ctx, args.LeagueID, args.Refresh)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]any{
			"league_id": res.LeagueID,
			"gameweek":  res.Gameweek,
			"teams":     difficultyRows(res),
		})
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "player_search",
		Description: "Fuzzy player lookup by name across the unified table",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PlayerSearchArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Query) == "" {
			return toolError(fmt.Errorf("query is required")), nil, nil
		}
		res, err := fetchBoard(ctx, args.LeagueID, false)
		if err != nil {
			return toolError(err), nil, nil
		}
		limit := args.Limit
		if limit <= 0 {
			limit = 5
		}
		return toolJSON(map[string]any{
			"league_id": res.LeagueID,
			"players":   searchPlayers(res, args.Query, limit),
		})
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "refresh_league",
		Description: "Force a refetch and return a board summary",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		res, err := fetchBoard(ctx, args.LeagueID, true)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(map[string]any{
			"league_id":      res.LeagueID,
			"gameweek":       res.Gameweek,
			"fetched_at_utc": res.FetchedAtUTC,
			"players":        len(res.Players),
			"owners":         len(res.Owners),
			"undrafted":      len(res.Undrafted),
		})
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("DRAFT_BOARD_API_KEY"))
	if *requireAuth && apiKey == "" {
		log.Fatal("DRAFT_BOARD_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	log.Printf("draft board MCP server listening on %s%s", *addr, *mcpPath)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
