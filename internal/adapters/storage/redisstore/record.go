package redisstore

import "github.com/jsamuelsen11/kanban-board-service/internal/domain/board"

// boardRecord is the stored JSON shape of a board.
type boardRecord struct {
	ProjectID int64          `json:"project_id"`
	Columns   []columnRecord `json:"columns"`
}

type columnRecord struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Tasks []taskRecord `json:"tasks"`
}

type taskRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func fromDomain(b board.Board) boardRecord {
	cols := make([]columnRecord, len(b.Columns))
	for i, c := range b.Columns {
		tasks := make([]taskRecord, len(c.Items))
		for j, t := range c.Items {
			tasks[j] = taskRecord{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Tags:        t.Tags,
			}
		}
		cols[i] = columnRecord{ID: c.ID, Name: c.Name, Tasks: tasks}
	}
	return boardRecord{ProjectID: b.ProjectID, Columns: cols}
}

func (r boardRecord) toDomain() board.Board {
	cols := make([]board.Column, len(r.Columns))
	for i, c := range r.Columns {
		items := make([]board.Task, len(c.Tasks))
		for j, t := range c.Tasks {
			tags := t.Tags
			if tags == nil {
				tags = []string{}
			}
			items[j] = board.Task{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Tags:        tags,
			}
		}
		cols[i] = board.Column{ID: c.ID, Name: c.Name, Items: items}
	}
	return board.Board{ProjectID: r.ProjectID, Columns: cols}
}
