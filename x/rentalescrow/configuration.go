package rentalescrow

import (
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/gconf"
)

const confPkg = "rentalescrow"

var isProgramID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{3,64}$`).MatchString

// Configuration holds the process wide identifiers of this extension. It is
// written once at genesis.
type Configuration struct {
	// ProgramID is part of every derivation, so that two deployments never
	// derive the same addresses.
	ProgramID string `protobuf:"bytes,1,opt,name=program_id,json=programId,proto3" json:"program_id,omitempty"`
	// Ticker is the only currency accepted for bookings.
	Ticker string `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

func (c *Configuration) Validate() error {
	var errs error
	if !isProgramID(c.ProgramID) {
		errs = errors.AppendField(errs, "ProgramID", errors.ErrInput)
	}
	if !coin.IsCC(c.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
