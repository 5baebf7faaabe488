package predicate

import (
	"testing"

	"github.com/redBorder/linebits/utils"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"
)

type Doner struct {
	mock.Mock
	doneCalled chan *utils.Message
}

func (d *Doner) Done(m *utils.Message, code int, status string) {
	d.Called(m, code, status)
	d.doneCalled <- m
}

func TestPredicates(t *testing.T) {
	Convey("Given the trailing space predicate", t, func() {
		Convey("When the record has a single character", func() {
			Convey("Then the bit should be 0", func() {
				So(TrailingSpace("\n"), ShouldEqual, byte(0))
				So(TrailingSpace(" "), ShouldEqual, byte(0))
			})
		})

		Convey("When the second-to-last character is a space", func() {
			Convey("Then the bit should be 1", func() {
				So(TrailingSpace("Scott Morrison \n"), ShouldEqual, byte(1))
				So(TrailingSpace(" \n"), ShouldEqual, byte(1))
			})
		})

		Convey("When the second-to-last character is not a space", func() {
			Convey("Then the bit should be 0", func() {
				So(TrailingSpace("Scott Morrison\n"), ShouldEqual, byte(0))
				So(TrailingSpace("a\t\n"), ShouldEqual, byte(0))
				So(TrailingSpace("ab"), ShouldEqual, byte(0))
			})
		})

		Convey("When the record is empty", func() {
			Convey("Then the bit should be 0", func() {
				So(TrailingSpace(""), ShouldEqual, byte(0))
			})
		})

		Convey("When the last character is multibyte", func() {
			Convey("Then characters are counted, not bytes", func() {
				So(TrailingSpace("café é"), ShouldEqual, byte(1))
				So(TrailingSpace("é"), ShouldEqual, byte(0))
			})
		})
	})

	Convey("Given the alternative predicates", t, func() {
		So(TrailingTab("line\t\n"), ShouldEqual, byte(1))
		So(TrailingTab("line \n"), ShouldEqual, byte(0))
		So(TrailingWhitespace("line\t\n"), ShouldEqual, byte(1))
		So(TrailingWhitespace("line \n"), ShouldEqual, byte(1))
		So(TrailingWhitespace("line\n"), ShouldEqual, byte(0))
		So(LastSpace("line "), ShouldEqual, byte(1))
		So(LastSpace("line"), ShouldEqual, byte(0))
		So(LastSpace(""), ShouldEqual, byte(0))
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given the predicate registry", t, func() {
		Convey("When an empty name is looked up", func() {
			p, err := Lookup("")

			Convey("Then the default predicate is returned", func() {
				So(err, ShouldBeNil)
				So(p(" \n"), ShouldEqual, byte(1))
			})
		})

		Convey("When an unknown name is looked up", func() {
			_, err := Lookup("nonexistent")

			Convey("Then should error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "Unknown predicate: nonexistent")
			})
		})

		Convey("When a custom predicate is registered", func() {
			Register("always-one", func(string) byte { return 1 })
			p, err := Lookup("always-one")

			Convey("Then it can be looked up", func() {
				So(err, ShouldBeNil)
				So(p("anything"), ShouldEqual, byte(1))
				So(Names(), ShouldContain, "always-one")
				So(Names(), ShouldContain, TrailingSpaceName)
			})
		})
	})
}

func TestExtractor(t *testing.T) {
	Convey("Given an extractor with the default predicate", t, func() {
		e, err := NewExtractor(Config{})
		So(err, ShouldBeNil)
		extractor := e.Spawn(0)

		d := &Doner{doneCalled: make(chan *utils.Message, 1)}

		Convey("When a message with records is received", func() {
			d.On("Done", mock.AnythingOfType("*utils.Message"), utils.CodeOK, "")

			m := utils.NewMessage()
			m.PushPayload([]string{"a \n", "b\n", "\n", " \n"})
			extractor.OnMessage(m, d.Done)

			Convey("Then one bit per record is pushed", func() {
				m := <-d.doneCalled
				data, err := m.PopPayload()
				So(err, ShouldBeNil)
				So(data, ShouldResemble, utils.BitSequence{1, 0, 0, 1})
				d.AssertExpectations(t)
			})
		})

		Convey("When a message without payload is received", func() {
			d.On("Done", mock.AnythingOfType("*utils.Message"), utils.CodeNoPayload,
				mock.AnythingOfType("string"))

			extractor.OnMessage(utils.NewMessage(), d.Done)

			Convey("Then the message is returned with an error", func() {
				m := <-d.doneCalled
				So(m.Err, ShouldNotBeNil)
				d.AssertExpectations(t)
			})
		})

		Convey("When the payload is not a list of records", func() {
			d.On("Done", mock.AnythingOfType("*utils.Message"), utils.CodeBadPayload,
				mock.AnythingOfType("string"))

			m := utils.NewMessage()
			m.PushPayload([]byte("raw"))
			extractor.OnMessage(m, d.Done)

			Convey("Then the message is rejected", func() {
				<-d.doneCalled
				d.AssertExpectations(t)
			})
		})
	})

	Convey("Given an extractor that was never spawned", t, func() {
		e, err := NewExtractor(Config{})
		So(err, ShouldBeNil)
		d := &Doner{doneCalled: make(chan *utils.Message, 1)}
		d.On("Done", mock.AnythingOfType("*utils.Message"), utils.CodeOK, "")

		Convey("When a message with records is received", func() {
			m := utils.NewMessage()
			m.PushPayload([]string{" \n", "\n"})
			e.OnMessage(m, d.Done)

			Convey("Then the bits are pushed", func() {
				m := <-d.doneCalled
				data, _ := m.PopPayload()
				So(data, ShouldResemble, utils.BitSequence{1, 0})
				d.AssertExpectations(t)
			})
		})
	})

	Convey("Given an extractor with an unknown predicate", t, func() {
		_, err := NewExtractor(Config{Predicate: "nonexistent"})

		Convey("Then it can't be created", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
