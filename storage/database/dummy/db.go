package dummydb

import (
	"sync"

	"github.com/interlinkedhq/interlinked/core/demo"
	"github.com/interlinkedhq/interlinked/core/user"
	"github.com/interlinkedhq/interlinked/core/waitlist"
	"github.com/interlinkedhq/interlinked/core/webinar"
)

type (
	DB struct {
		user     *userTable
		waitlist *waitlistTable
		demo     *demoTable
		webinar  *webinarTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	waitlistTable struct {
		sync.RWMutex
		table []waitlist.Entry
	}

	demoTable struct {
		sync.RWMutex
		table []demo.Booking
	}

	webinarTable struct {
		sync.RWMutex
		table []webinar.Registration
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:     &userTable{table: make(map[string]*user.User)},
		waitlist: &waitlistTable{},
		demo:     &demoTable{},
		webinar:  &webinarTable{},
	}
	return db, nil
}
