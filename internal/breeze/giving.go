package breeze

import (
	"context"
	"errors"
)

// FundSplit allocates part of a contribution to a fund. ID is optional; when
// present it must match an existing fund and overrides Name.
type FundSplit struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ContributionRequest describes a payment for the add and edit calls.
// PersonID identifies the donor directly; when it is unknown, UID and
// Processor identify them through the giving platform, optionally aided by
// Name, Email and StreetAddress for matching.
type ContributionRequest struct {
	Date          string // YYYY-MM-DD
	PersonID      string
	UID           string
	Processor     string
	Method        string
	Funds         []FundSplit
	Amount        string // must equal the sum of the fund splits
	Group         string
	BatchNumber   string
	BatchName     string
	Note          string
	Name          string
	Email         string
	StreetAddress string
}

func (r ContributionRequest) params() params {
	p := params{
		"date":           r.Date,
		"person_id":      r.PersonID,
		"uid":            r.UID,
		"processor":      r.Processor,
		"method":         r.Method,
		"amount":         r.Amount,
		"group":          r.Group,
		"batch_number":   r.BatchNumber,
		"batch_name":     r.BatchName,
		"note":           r.Note,
		"name":           r.Name,
		"email":          r.Email,
		"street_address": r.StreetAddress,
	}
	if len(r.Funds) > 0 {
		p["funds_json"] = r.Funds
	}
	return p
}

type paymentResponse struct {
	PaymentID string `json:"payment_id"`
}

// AddContribution records a payment and returns its payment id.
func (c *Client) AddContribution(ctx context.Context, req ContributionRequest) (string, error) {
	var out paymentResponse
	if err := c.get(ctx, endpointContributions, "add", req.params(), &out); err != nil {
		return "", err
	}
	return out.PaymentID, nil
}

// EditContribution replaces the payment with the given id and returns the new
// payment id.
func (c *Client) EditContribution(ctx context.Context, paymentID string, req ContributionRequest) (string, error) {
	p := req.params()
	p["payment_id"] = paymentID
	var out paymentResponse
	if err := c.get(ctx, endpointContributions, "edit", p, &out); err != nil {
		return "", err
	}
	return out.PaymentID, nil
}

type successResponse struct {
	Success bool `json:"success"`
}

// DeleteContribution removes a payment.
func (c *Client) DeleteContribution(ctx context.Context, paymentID string) (bool, error) {
	var out successResponse
	err := c.get(ctx, endpointContributions, "delete", params{"payment_id": paymentID}, &out)
	return out.Success, err
}

// ListContributionsOptions filters a contribution listing.
type ListContributionsOptions struct {
	Start          string // YYYY-MM-DD, on or after
	End            string // YYYY-MM-DD, on or before
	PersonID       string
	IncludeFamily  bool // requires PersonID
	AmountMin      string
	AmountMax      string
	MethodIDs      []string
	FundIDs        []string
	EnvelopeNumber string
	Batches        []string
	Forms          []string
}

// ListContributions retrieves payments matching the given filters.
func (c *Client) ListContributions(ctx context.Context, opts ListContributionsOptions) ([]Contribution, error) {
	if opts.IncludeFamily && opts.PersonID == "" {
		return nil, errors.New("include_family requires a person_id")
	}
	p := params{
		"start":           opts.Start,
		"end":             opts.End,
		"person_id":       opts.PersonID,
		"include_family":  opts.IncludeFamily,
		"amount_min":      opts.AmountMin,
		"amount_max":      opts.AmountMax,
		"method_ids":      opts.MethodIDs,
		"fund_ids":        opts.FundIDs,
		"envelope_number": opts.EnvelopeNumber,
		"batches":         opts.Batches,
		"forms":           opts.Forms,
	}
	var out []Contribution
	err := c.get(ctx, endpointContributions, "list", p, &out)
	return out, err
}

// ListFunds lists the account's funds, optionally with giving totals.
func (c *Client) ListFunds(ctx context.Context, includeTotals bool) ([]Fund, error) {
	var p params
	if includeTotals {
		p = params{"include_totals": "1"}
	}
	var out []Fund
	err := c.get(ctx, endpointFunds, "list", p, &out)
	return out, err
}

// ListCampaigns lists pledge campaigns.
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	var out []Campaign
	err := c.get(ctx, endpointPledges, "list_campaigns", nil, &out)
	return out, err
}

// ListPledges lists the pledges within a campaign.
func (c *Client) ListPledges(ctx context.Context, campaignID string) ([]Pledge, error) {
	var out []Pledge
	err := c.get(ctx, endpointPledges, "list_pledges", params{"campaign_id": campaignID}, &out)
	return out, err
}
