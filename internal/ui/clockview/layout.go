package clockview

import "fyne.io/fyne/v2"

// Cell is the area assigned to one clock face.
type Cell struct {
	Position fyne.Position
	Size     fyne.Size
}

// Cells places count faces inside size. Index i always maps to the same
// cell for a given count, whichever clock is active:
// one face fills the area, two or three share a row, four form a 2x2 grid.
func Cells(count int, size fyne.Size) []Cell {
	if count <= 0 {
		return nil
	}
	columns, rows := count, 1
	if count == 4 {
		columns, rows = 2, 2
	}

	width := size.Width / float32(columns)
	height := size.Height / float32(rows)
	cells := make([]Cell, count)
	for index := range cells {
		column := index % columns
		row := index / columns
		cells[index] = Cell{
			Position: fyne.NewPos(float32(column)*width, float32(row)*height),
			Size:     fyne.NewSize(width, height),
		}
	}
	return cells
}

type facesLayout struct{}

func (layout *facesLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for index, cell := range Cells(len(objects), size) {
		objects[index].Move(cell.Position)
		objects[index].Resize(cell.Size)
	}
}

func (layout *facesLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	var width, height float32
	for _, object := range objects {
		minSize := object.MinSize()
		if minSize.Width > width {
			width = minSize.Width
		}
		if minSize.Height > height {
			height = minSize.Height
		}
	}
	columns, rows := len(objects), 1
	if len(objects) == 4 {
		columns, rows = 2, 2
	}
	return fyne.NewSize(width*float32(columns), height*float32(rows))
}
