package uml

import (
	"context"
	"math"

	"github.com/matzehuels/classtower/pkg/dag"
	"github.com/matzehuels/classtower/pkg/dag/transform"
	"github.com/matzehuels/classtower/pkg/errors"
	"github.com/matzehuels/classtower/pkg/hierarchy"
	"github.com/matzehuels/classtower/pkg/render/uml/ordering"
)

// alignPasses bounds the rounds of pulling nodes toward their neighbours.
const alignPasses = 8

// Layout mirrors g, layers it, orders the rows and assigns coordinates.
// Bases are drawn above the classes deriving from them.
func (b *Backend) Layout(ctx context.Context, g *hierarchy.Graph) (*Diagram, error) {
	d, dropped := Mirror(g)
	if dropped > 0 {
		b.logger.Warn("dropped dangling edges", "backend", Name, "count", dropped)
	}

	res, err := transform.Layer(d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "layer class graph")
	}
	if res.CyclesBroken > 0 {
		b.logger.Warn("broke inheritance cycles", "edges", res.CyclesBroken)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var orders map[int][]string
	if co, ok := b.orderer.(ordering.ContextOrderer); ok {
		orders = co.OrderRowsContext(ctx, d)
	} else {
		orders = b.orderer.OrderRows(d)
	}
	if err := checkOrders(d, orders); err != nil {
		return nil, err
	}

	diagram := &Diagram{
		Rows:         res.Rows,
		Bends:        res.Bends,
		CyclesBroken: res.CyclesBroken,
		Dropped:      dropped,
		Crossings:    dag.CountCrossings(d, orders),
	}
	b.place(d, orders, diagram)
	b.logger.Debug("uml layout", "rows", diagram.Rows, "bends", diagram.Bends, "crossings", diagram.Crossings)
	return diagram, nil
}

// checkOrders rejects an orderer result that loses or invents nodes.
func checkOrders(d *dag.DAG, orders map[int][]string) error {
	seen := 0
	for r, ids := range orders {
		for _, id := range ids {
			n, ok := d.Node(id)
			if !ok || n.Row != r {
				return errors.New(errors.ErrCodeLayoutFailed, "orderer placed %q in row %d", id, r)
			}
			seen++
		}
	}
	if seen != d.NodeCount() {
		return errors.New(errors.ErrCodeLayoutFailed, "orderer returned %d of %d nodes", seen, d.NodeCount())
	}
	return nil
}

// place assigns coordinates. Row r of the DAG is drawn at display row
// maxRow-r so the classes without bases end up on top.
func (b *Backend) place(d *dag.DAG, orders map[int][]string, out *Diagram) {
	sp := b.spacing
	rows := d.RowIDs()
	maxRow := d.MaxRow()

	centers := b.assignX(d, orders, rows)

	// Row tops, walking display rows from the top.
	rowTop := make(map[int]float64, len(rows))
	rowHeight := make(map[int]float64, len(rows))
	y := sp.Margin
	for display := 0; display <= maxRow && len(rows) > 0; display++ {
		r := maxRow - display
		h := 0.0
		for _, id := range orders[r] {
			n, _ := d.Node(id)
			_, nh := nodeSize(n)
			h = max(h, nh)
		}
		rowTop[r], rowHeight[r] = y, h
		y += h + sp.RowGap
	}
	height := y - sp.RowGap + sp.Margin
	if len(rows) == 0 {
		height = 2 * sp.Margin
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, n := range d.Nodes() {
		w, _ := nodeSize(n)
		minX = min(minX, centers[n.ID]-w/2)
		maxX = max(maxX, centers[n.ID]+w/2)
	}
	shift := sp.Margin - minX
	if len(rows) == 0 {
		shift, maxX = 0, 0
	}

	for _, n := range d.Nodes() {
		if n.IsBend() {
			continue
		}
		w, h := nodeSize(n)
		label, _ := n.Meta[MetaLabel].(string)
		out.Boxes = append(out.Boxes, Box{
			ID:    n.ID,
			Label: label,
			X:     centers[n.ID] - w/2 + shift,
			Y:     rowTop[n.Row] + (rowHeight[n.Row]-h)/2,
			W:     w,
			H:     h,
		})
	}
	out.Width = maxX + shift + sp.Margin
	if len(rows) == 0 {
		out.Width = 2 * sp.Margin
	}
	out.Height = height

	boxes := make(map[string]Box, len(out.Boxes))
	for _, box := range out.Boxes {
		boxes[box.ID] = box
	}
	for _, n := range d.Nodes() {
		if n.IsBend() {
			continue
		}
		from := boxes[n.ID]
		for _, child := range d.Children(n.ID) {
			points := []Point{{X: from.CenterX(), Y: from.Y}}
			id := child
			for {
				c, _ := d.Node(id)
				if !c.IsBend() {
					break
				}
				points = append(points, Point{X: centers[id] + shift, Y: rowTop[c.Row] + rowHeight[c.Row]/2})
				id = d.Children(id)[0]
			}
			to := boxes[id]
			points = append(points, Point{X: to.CenterX(), Y: to.Bottom()})
			out.Arrows = append(out.Arrows, Arrow{From: n.ID, To: id, Points: points})
		}
	}
}

// assignX returns the center x of every node. Rows are first packed left
// to right, then each row is pulled toward the mean x of its neighbours
// while keeping boxes at least NodeGap apart.
func (b *Backend) assignX(d *dag.DAG, orders map[int][]string, rows []int) map[string]float64 {
	centers := make(map[string]float64, d.NodeCount())
	for _, r := range rows {
		x := 0.0
		for i, id := range orders[r] {
			w := b.width(d, id)
			if i > 0 {
				x += b.separation(d, orders[r][i-1], id)
			} else {
				x = w / 2
			}
			centers[id] = x
		}
	}

	for pass := 0; pass < alignPasses; pass++ {
		for _, r := range rows {
			ids := orders[r]
			if len(ids) == 0 {
				continue
			}
			desired := make([]float64, len(ids))
			for i, id := range ids {
				desired[i] = centers[id]
				var sum float64
				nbrs := append(append([]string(nil), d.Parents(id)...), d.Children(id)...)
				for _, nb := range nbrs {
					sum += centers[nb]
				}
				if len(nbrs) > 0 {
					desired[i] = sum / float64(len(nbrs))
				}
			}

			pos := append([]float64(nil), desired...)
			for i := 1; i < len(ids); i++ {
				pos[i] = max(pos[i], pos[i-1]+b.separation(d, ids[i-1], ids[i]))
			}
			// Packing only pushes right; shifting the whole row back keeps
			// the gaps and restores the mean of the desired positions.
			var drift float64
			for i := range ids {
				drift += desired[i] - pos[i]
			}
			drift /= float64(len(ids))
			for i, id := range ids {
				centers[id] = pos[i] + drift
			}
		}
	}
	return centers
}

func (b *Backend) width(d *dag.DAG, id string) float64 {
	n, _ := d.Node(id)
	w, _ := nodeSize(n)
	return w
}

// separation is the minimum distance between the centers of two
// neighbouring nodes. Bend points need only half a gap.
func (b *Backend) separation(d *dag.DAG, left, right string) float64 {
	gap := b.spacing.NodeGap
	ln, _ := d.Node(left)
	rn, _ := d.Node(right)
	if ln.IsBend() || rn.IsBend() {
		gap /= 2
	}
	return b.width(d, left)/2 + gap + b.width(d, right)/2
}
