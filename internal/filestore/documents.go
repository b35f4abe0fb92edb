package filestore

import (
	"time"

	"github.com/pena-betica-escocesa/api/internal/model"
)

// Document schema versions. Bumped when the on-disk shape changes so a
// deploy can migrate old files.
const (
	VotingDocumentVersion      = 1
	MerchandiseDocumentVersion = 1
)

// VotingDocument is the full state of a shirt-design voting round.
type VotingDocument struct {
	Version   int                `json:"version"`
	Open      bool               `json:"open"`
	ClosesAt  *time.Time         `json:"closesAt,omitempty"`
	Designs   []model.Design     `json:"designs"`
	Votes     []model.DesignVote `json:"votes"`
	PreOrders []model.PreOrder   `json:"preOrders"`
	Stats     VotingStats        `json:"stats"`
}

// VotingStats is the denormalized summary block kept in the document so
// the public site can render counts without walking the arrays.
type VotingStats struct {
	TotalVotes     int       `json:"totalVotes"`
	TotalPreOrders int       `json:"totalPreOrders"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// Touch recomputes the stats block. Call after every mutation, before
// the document is written back.
func (d *VotingDocument) Touch(now time.Time) {
	d.Stats.TotalVotes = len(d.Votes)
	d.Stats.TotalPreOrders = len(d.PreOrders)
	d.Stats.LastUpdated = now
}

// NewVotingDocument returns the default document for a fresh data dir.
func NewVotingDocument() VotingDocument {
	return VotingDocument{
		Version:   VotingDocumentVersion,
		Open:      true,
		Designs:   []model.Design{},
		Votes:     []model.DesignVote{},
		PreOrders: []model.PreOrder{},
	}
}

// MerchandiseDocument is the full state of the merchandise catalog and
// its orders.
type MerchandiseDocument struct {
	Version  int              `json:"version"`
	Products []model.Product  `json:"products"`
	Orders   []model.Order    `json:"orders"`
	Stats    MerchandiseStats `json:"stats"`
}

// MerchandiseStats mirrors VotingStats for the merchandise document.
type MerchandiseStats struct {
	TotalProducts int       `json:"totalProducts"`
	TotalOrders   int       `json:"totalOrders"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// Touch recomputes the stats block.
func (d *MerchandiseDocument) Touch(now time.Time) {
	d.Stats.TotalProducts = len(d.Products)
	d.Stats.TotalOrders = len(d.Orders)
	d.Stats.LastUpdated = now
}

// NewMerchandiseDocument returns the default document for a fresh data dir.
func NewMerchandiseDocument() MerchandiseDocument {
	return MerchandiseDocument{
		Version:  MerchandiseDocumentVersion,
		Products: []model.Product{},
		Orders:   []model.Order{},
	}
}
