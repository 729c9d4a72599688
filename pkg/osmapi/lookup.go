package osmapi

import (
	"context"
	"fmt"

	"github.com/paulmach/osm"
)

// validateType checks typ against the closed set of lookup targets.
// Unrecognized tokens are a caller error, never normalized.
func validateType(op string, typ osm.Type) error {
	switch typ {
	case osm.TypeNode, osm.TypeWay, osm.TypeRelation:
		return nil
	}
	return &Error{
		Kind:    KindInvalidArgument,
		Op:      op,
		Message: fmt.Sprintf("object type must be node, way or relation, got %q", typ),
	}
}

// validateID rejects non-positive ids before any network call.
func validateID(op string, id int64) error {
	if id <= 0 {
		return &Error{
			Kind:    KindInvalidArgument,
			Op:      op,
			Message: fmt.Sprintf("id must be a positive integer, got %d", id),
		}
	}
	return nil
}

// getOne fetches a path whose response must decode to exactly one object.
func (c *Client) getOne(ctx context.Context, op, path string) (osm.Object, error) {
	body, err := c.fetch(ctx, op, path)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(body)
	return decodeOne(ctx, op, body)
}

// getMany fetches a path and returns the full decoded sequence.
func (c *Client) getMany(ctx context.Context, op, path string) (osm.Objects, error) {
	body, err := c.fetch(ctx, op, path)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(body)
	return decodeAll(ctx, op, body)
}

// GetObject fetches the current version of a single object by type and id.
func (c *Client) GetObject(ctx context.Context, typ osm.Type, id int64) (osm.Object, error) {
	const op = "GetObject"
	if err := validateType(op, typ); err != nil {
		return nil, err
	}
	if err := validateID(op, id); err != nil {
		return nil, err
	}
	return c.getOne(ctx, op, fmt.Sprintf("%s/%d", typ, id))
}

// GetNode fetches the current version of a node.
func (c *Client) GetNode(ctx context.Context, id int64) (*osm.Node, error) {
	const op = "GetNode"
	if err := validateID(op, id); err != nil {
		return nil, err
	}
	obj, err := c.getOne(ctx, op, fmt.Sprintf("node/%d", id))
	if err != nil {
		return nil, err
	}
	node, ok := obj.(*osm.Node)
	if !ok {
		return nil, &Error{Kind: KindDecode, Op: op, Message: fmt.Sprintf("expected a node, decoded %T", obj)}
	}
	return node, nil
}

// GetWay fetches the current version of a way.
func (c *Client) GetWay(ctx context.Context, id int64) (*osm.Way, error) {
	const op = "GetWay"
	if err := validateID(op, id); err != nil {
		return nil, err
	}
	obj, err := c.getOne(ctx, op, fmt.Sprintf("way/%d", id))
	if err != nil {
		return nil, err
	}
	way, ok := obj.(*osm.Way)
	if !ok {
		return nil, &Error{Kind: KindDecode, Op: op, Message: fmt.Sprintf("expected a way, decoded %T", obj)}
	}
	return way, nil
}

// GetRelation fetches the current version of a relation.
func (c *Client) GetRelation(ctx context.Context, id int64) (*osm.Relation, error) {
	const op = "GetRelation"
	if err := validateID(op, id); err != nil {
		return nil, err
	}
	obj, err := c.getOne(ctx, op, fmt.Sprintf("relation/%d", id))
	if err != nil {
		return nil, err
	}
	rel, ok := obj.(*osm.Relation)
	if !ok {
		return nil, &Error{Kind: KindDecode, Op: op, Message: fmt.Sprintf("expected a relation, decoded %T", obj)}
	}
	return rel, nil
}

// GetWaysUsingNode fetches all ways that reference the given node, in the
// order the API returned them.
func (c *Client) GetWaysUsingNode(ctx context.Context, id int64) (osm.Objects, error) {
	const op = "GetWaysUsingNode"
	if err := validateID(op, id); err != nil {
		return nil, err
	}
	return c.getMany(ctx, op, fmt.Sprintf("node/%d/ways", id))
}

// GetRelationsReferringTo fetches all relations that have the given object
// as a member.
func (c *Client) GetRelationsReferringTo(ctx context.Context, typ osm.Type, id int64) (osm.Objects, error) {
	const op = "GetRelationsReferringTo"
	if err := validateType(op, typ); err != nil {
		return nil, err
	}
	if err := validateID(op, id); err != nil {
		return nil, err
	}
	return c.getMany(ctx, op, fmt.Sprintf("%s/%d/relations", typ, id))
}

// GetHistory fetches all stored versions of an object, oldest first.
//
// The API does not serve relation history; those calls return an empty
// sequence without issuing a request. This mirrors the upstream
// limitation rather than papering over it.
func (c *Client) GetHistory(ctx context.Context, typ osm.Type, id int64) (osm.Objects, error) {
	const op = "GetHistory"
	if err := validateType(op, typ); err != nil {
		return nil, err
	}
	if err := validateID(op, id); err != nil {
		return nil, err
	}
	if typ == osm.TypeRelation {
		return osm.Objects{}, nil
	}
	return c.getMany(ctx, op, fmt.Sprintf("%s/%d/history", typ, id))
}

// Ping checks that the API instance is reachable and answering. It fetches
// the capabilities document and discards the body.
func (c *Client) Ping(ctx context.Context) error {
	const op = "Ping"
	body, err := c.fetch(ctx, op, "capabilities")
	if err != nil {
		return err
	}
	drainAndClose(body)
	return nil
}
