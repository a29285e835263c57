package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// IngestClient calls analytics.v1.Ingest over an existing connection.
type IngestClient struct {
	cc     grpc.ClientConnInterface
	apiKey string
}

func NewIngestClient(cc grpc.ClientConnInterface, apiKey string) *IngestClient {
	return &IngestClient{cc: cc, apiKey: apiKey}
}

func (c *IngestClient) Track(ctx context.Context, msg *TrackMessage, opts ...grpc.CallOption) (*TrackReply, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, apiKeyMetadata, c.apiKey)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)

	out := new(TrackReply)
	if err := c.cc.Invoke(ctx, TrackMethod, msg, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
