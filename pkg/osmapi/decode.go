package osmapi

import (
	"context"
	"io"
	"net/http"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/m3th0s/osmlib-base/pkg/monitoring"
)

// handlers receives decoded objects in document order. A non-nil return
// from a handler stops the scan immediately; the error surfaces unchanged.
type handlers struct {
	onNode     func(*osm.Node) error
	onWay      func(*osm.Way) error
	onRelation func(*osm.Relation) error
}

// scanBody drives the streaming parser over body, dispatching each
// recognized object. Parser failures are reported as KindDecode.
func scanBody(ctx context.Context, op string, body io.Reader, h handlers) error {
	scanner := osmxml.New(ctx, body)
	defer scanner.Close()

	for scanner.Scan() {
		var err error
		switch o := scanner.Object().(type) {
		case *osm.Node:
			if h.onNode != nil {
				err = h.onNode(o)
			}
		case *osm.Way:
			if h.onWay != nil {
				err = h.onWay(o)
			}
		case *osm.Relation:
			if h.onRelation != nil {
				err = h.onRelation(o)
			}
		}
		if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		monitoring.RecordDecodeError(op)
		return &Error{Kind: KindDecode, Op: op, Message: "parse response body", Err: err}
	}
	return nil
}

// decodeAll collects every recognized object in document order.
func decodeAll(ctx context.Context, op string, body io.Reader) (osm.Objects, error) {
	objs := osm.Objects{}
	collect := func(o osm.Object) error {
		objs = append(objs, o)
		return nil
	}

	err := scanBody(ctx, op, body, handlers{
		onNode:     func(n *osm.Node) error { return collect(n) },
		onWay:      func(w *osm.Way) error { return collect(w) },
		onRelation: func(r *osm.Relation) error { return collect(r) },
	})
	if err != nil {
		return nil, err
	}
	return objs, nil
}

// decodeOne enforces the single-object invariant: the second decoded
// object aborts the scan before parsing completes. A 200 response that
// decodes to nothing is reported as not-found.
func decodeOne(ctx context.Context, op string, body io.Reader) (osm.Object, error) {
	var found osm.Object
	collect := func(o osm.Object) error {
		if found != nil {
			return &Error{
				Kind:    KindTooManyObjects,
				Op:      op,
				Message: "single-object response decoded to more than one object",
			}
		}
		found = o
		return nil
	}

	err := scanBody(ctx, op, body, handlers{
		onNode:     func(n *osm.Node) error { return collect(n) },
		onWay:      func(w *osm.Way) error { return collect(w) },
		onRelation: func(r *osm.Relation) error { return collect(r) },
	})
	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, &Error{
			Kind:       KindNotFound,
			StatusCode: http.StatusOK,
			Op:         op,
			Message:    "response contained no objects",
		}
	}
	return found, nil
}
