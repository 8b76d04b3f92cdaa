package fetch

import (
	"context"
	"fmt"

	"fpl-draft-board/internal/draftapi"
)

// /bootstrap-static
func (c *Client) Bootstrap(ctx context.Context) (*draftapi.Bootstrap, error) {
	body, err := c.GetJSON(ctx, "/bootstrap-static", "bootstrap/bootstrap-static.json")
	if err != nil {
		return nil, err
	}
	return draftapi.ParseBootstrap(body)
}

// /league/{league_id}/details
func (c *Client) LeagueDetails(ctx context.Context, leagueID int) (*draftapi.LeagueDetails, error) {
	body, err := c.GetJSON(ctx,
		fmt.Sprintf("/league/%d/details", leagueID),
		fmt.Sprintf("league/%d/details.json", leagueID),
	)
	if err != nil {
		return nil, err
	}
	return draftapi.ParseLeagueDetails(body)
}

// /draft/{league_id}/choices
func (c *Client) DraftChoices(ctx context.Context, leagueID int) (*draftapi.DraftChoices, error) {
	body, err := c.GetJSON(ctx,
		fmt.Sprintf("/draft/%d/choices", leagueID),
		fmt.Sprintf("draft/%d/choices.json", leagueID),
	)
	if err != nil {
		return nil, err
	}
	return draftapi.ParseDraftChoices(body)
}

// /league/{league_id}/element-status
func (c *Client) ElementStatus(ctx context.Context, leagueID int) (*draftapi.ElementStatusResponse, error) {
	body, err := c.GetJSON(ctx,
		fmt.Sprintf("/league/%d/element-status", leagueID),
		fmt.Sprintf("league/%d/element-status.json", leagueID),
	)
	if err != nil {
		return nil, err
	}
	return draftapi.ParseElementStatus(body)
}

// /event/{gw}/live
func (c *Client) EventLive(ctx context.Context, gw int) (*draftapi.EventLive, error) {
	body, err := c.GetJSON(ctx,
		fmt.Sprintf("/event/%d/live", gw),
		fmt.Sprintf("gw/%d/live.json", gw),
	)
	if err != nil {
		return nil, err
	}
	return draftapi.ParseEventLive(body)
}
