package scene

// Hit zones are invisible ground-plane rectangles used only for pointer-ray
// intersection. Each zone is tagged once at build time; nothing downstream
// inspects entity payloads to figure out what it hit.

type ZoneKind string

const (
	// ZoneEntity opens the detail overlay for the tagged entity on click.
	ZoneEntity ZoneKind = "entity"
	// ZoneAdd navigates to the creation page on click.
	ZoneAdd ZoneKind = "add"
)

// Zone dimensions match the invisible planes the frontend attaches to each
// block group.
const (
	DefaultZoneWidth = 11.0
	DefaultZoneDepth = 14.0
)

// HitZone is an interactive rectangle lying on the ground plane (y == 0),
// axis-aligned, centered at (X, Z).
type HitZone struct {
	Kind     ZoneKind `json:"kind"`
	EntityID int64    `json:"entity_id,omitempty"`
	X        float64  `json:"x"`
	Z        float64  `json:"z"`
	Width    float64  `json:"width"`
	Depth    float64  `json:"depth"`
}

// Contains reports whether the ground-plane point (x, z) lies inside the zone.
func (h HitZone) Contains(x, z float64) bool {
	halfW := h.Width / 2
	halfD := h.Depth / 2
	return x >= h.X-halfW && x <= h.X+halfW && z >= h.Z-halfD && z <= h.Z+halfD
}

// Tile is the per-entity payload a block carries into the scene, enough to
// populate the hover popup without a follow-up fetch.
type Tile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Current  int64  `json:"current"`
	Capacity int64  `json:"capacity"`
}

// Block is one rendered entity cell.
type Block struct {
	Tile
	Placement
}

// Scene is the drawable description of one overview: entity blocks laid out
// on the grid plus the hit zones the pointer dispatcher intersects against.
type Scene struct {
	Columns int       `json:"columns"`
	Rows    int       `json:"rows"`
	Blocks  []Block   `json:"blocks"`
	Zones   []HitZone `json:"zones"`
}

// BuildOptions tunes scene construction.
type BuildOptions struct {
	// IncludeAdd appends the "add new" zone in the cell after the last
	// entity, the way the warehouse overview draws its plus-button.
	IncludeAdd bool
	ZoneWidth  float64
	ZoneDepth  float64
}

// Build lays the tiles out on spec's grid and derives one hit zone per tile
// (plus the optional trailing add zone). The add zone participates in the
// layout as item n, so the grid is computed over n+1 cells.
func Build(tiles []Tile, spec GridSpec, opts BuildOptions) Scene {
	width := opts.ZoneWidth
	if width <= 0 {
		width = DefaultZoneWidth
	}
	depth := opts.ZoneDepth
	if depth <= 0 {
		depth = DefaultZoneDepth
	}

	total := len(tiles)
	if opts.IncludeAdd {
		total++
	}
	placements := spec.Layout(total)

	sc := Scene{
		Blocks: make([]Block, 0, len(tiles)),
		Zones:  make([]HitZone, 0, total),
	}
	if total > 0 {
		columns := spec.Columns(total)
		sc.Columns = columns
		sc.Rows = (total + columns - 1) / columns
	}

	for i, tile := range tiles {
		p := placements[i]
		sc.Blocks = append(sc.Blocks, Block{Tile: tile, Placement: p})
		sc.Zones = append(sc.Zones, HitZone{
			Kind:     ZoneEntity,
			EntityID: tile.ID,
			X:        p.X,
			Z:        p.Z,
			Width:    width,
			Depth:    depth,
		})
	}

	if opts.IncludeAdd {
		p := placements[len(tiles)]
		sc.Zones = append(sc.Zones, HitZone{
			Kind:  ZoneAdd,
			X:     p.X,
			Z:     p.Z,
			Width: width,
			Depth: depth,
		})
	}

	return sc
}
