package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/arloliu/goalog/internal/hash"
	"github.com/arloliu/goalog/internal/options"
	"github.com/arloliu/goalog/section"
)

// Parser decodes a single Cressi Goa dive record.
//
// The parser borrows data read-only; the caller must not modify it while the parser
// is in use. A Parser is immutable after New returns, so its methods are safe for
// concurrent use.
type Parser struct {
	data []byte
	ctx  section.Context
	cfg  *config
}

var _ Decoder = (*Parser)(nil)

// New validates the record header and returns a parser for data.
//
// Parameters:
//   - data: complete dive record as downloaded from the device
//   - opts: optional configuration (WithLogger, WithGasMixEvents, WithMaxRecords)
//
// Returns:
//   - *Parser: parser ready for field and sample queries
//   - error: ErrInvalidArgs for invalid options, or a header decoding error
//     (ErrInvalidLength, ErrInvalidHeader, ErrInvalidMode)
func New(data []byte, opts ...Option) (*Parser, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	ctx, err := section.ParseHeader(data)
	if err != nil {
		fields := logrus.Fields{"size": len(data)}
		if len(data) >= section.PrefixSize {
			fields["id_len"] = data[0]
			fields["logbook_len"] = data[1]
		}
		cfg.logger.WithError(err).WithFields(fields).Error("failed to decode dive header")

		return nil, err
	}

	cfg.logger.WithFields(logrus.Fields{
		"mode":        ctx.Mode.String(),
		"header_size": ctx.HeaderSize,
		"size":        len(data),
	}).Debug("decoded dive header")

	return &Parser{
		data: data,
		ctx:  ctx,
		cfg:  cfg,
	}, nil
}

// Context returns the decoding context derived from the record header.
func (p *Parser) Context() section.Context {
	return p.ctx
}

// Layout returns a copy of the field layout of the record's dive mode.
func (p *Parser) Layout() section.Layout {
	return p.ctx.Layout
}

// Fingerprint returns a 64-bit identity of the dive, computed over the identifier
// and logbook blocks. Records of the same dive produce the same fingerprint.
func (p *Parser) Fingerprint() uint64 {
	return hash.Fingerprint(p.ctx.Identifier(p.data), p.ctx.Logbook(p.data))
}

// Family returns the device family handled by the parser.
func (p *Parser) Family() Family {
	return FamilyCressiGoa
}
