// Copyright (C) ENEO Tecnologia SL - 2016
//
// Authors: Diego Fernández Barrera <dfernandez@redborder.com> <bigomby@gmail.com>
// 					Eugenio Pérez Martín <eugenio@redborder.com>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/lgpl-3.0.txt>.

package linebits

import (
	"github.com/benbjohnson/clock"
	"github.com/redBorder/linebits/utils"
)

// pipeline contains the components. Messages go through every component on
// the caller goroutine.
type pipeline struct {
	components []utils.Composer
	clk        clock.Clock
}

// newPipeline creates a new pipeline
func newPipeline(clk clock.Clock) *pipeline {
	if clk == nil {
		clk = clock.New()
	}

	return &pipeline{
		clk: clk,
	}
}

// PushComponent adds a new component to the pipeline
func (p *pipeline) PushComponent(composer utils.Composer) {
	p.components = append(p.components, composer.Spawn(len(p.components)))
}

// Run sends the message through the pipeline and returns the report of the
// last component that handled it. The report is also pushed to the message.
func (p *pipeline) Run(m *utils.Message) Report {
	start := p.clk.Now()
	rep := Report{
		ID:        m.ID,
		Component: -1,
		Code:      utils.CodeNotReported,
		Status:    "No component reported",
	}

	var run func(index int)
	run = func(index int) {
		p.components[index].OnMessage(m, func(m *utils.Message, code int, status string) {
			// If there is another component next in the pipeline send the
			// message to it. In other case fill the report
			if code == utils.CodeOK && len(p.components)-1 > index {
				run(index + 1)
				return
			}

			rep.Component = index
			rep.Code = code
			rep.Status = status
		})
	}

	if len(p.components) > 0 {
		run(0)
	}

	rep.Err = m.Err
	rep.Elapsed = p.clk.Since(start)
	m.Reports.Push(rep)

	return rep
}
