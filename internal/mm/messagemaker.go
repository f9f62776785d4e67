//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/akranes/rentaltopics/internal/vv"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND = -1
	MSGCRIT = 0
	MSGWARN = 1
	MSGNOTE = 2
	MSGFYI  = 3
	MSGPEEK = 4
	MSGTMI  = 5

	TIMETRACKERMSGTHRESH = MSGFYI

	RESET   = "\033[0m"
	BLUE2   = "\033[38;5;68m"  // SteelBlue3
	CYAN2   = "\033[38;5;117m" // SkyBlue1
	GREEN   = "\033[38;5;70m"  // Chartreuse3
	RED1    = "\033[38;5;160m" // Red3
	YELLOW1 = "\033[38;5;178m" // Gold3
	YELLOW2 = "\033[38;5;143m" // DarkKhaki
	GREY3   = "\033[38;5;242m" // Grey42
	WHITE   = "\033[38;5;255m" // Grey93

	PANIC  = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
	PANIC2 = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"
)

type LaunchStruct struct {
	Name       string
	Version    string
	Shortname  string
	LaunchTime time.Time
	Caller     string
}

type MessageMaker struct {
	Lnc  LaunchStruct
	LLvl int
	BW   bool
	Win  bool
}

// NewMessageMaker - a MessageMaker with project defaults; every package that talks to the terminal owns one
func NewMessageMaker() *MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &MessageMaker{
		Lnc: LaunchStruct{
			Name:       vv.MYNAME,
			Version:    vv.VERSION,
			Shortname:  vv.SHORTNAME,
			LaunchTime: time.Now(),
		},
		LLvl: vv.DEFAULTGOLOGLEVEL,
		BW:   false,
		Win:  w,
	}
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[RT] 311 of 362 rows survived the price filter"

	if m.LLvl < threshold {
		return
	}

	if !m.Win && !m.BW {
		var color string

		switch threshold {
		case MSGMAND:
			color = GREEN
		case MSGCRIT:
			color = RED1
		case MSGWARN:
			color = YELLOW2
		case MSGNOTE:
			color = YELLOW1
		case MSGFYI:
			color = CYAN2
		case MSGPEEK:
			color = BLUE2
		case MSGTMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Printf("[%s%s%s] %s%s%s\n", YELLOW1, m.Lnc.Shortname, RESET, color, message, RESET)
	} else {
		// terminal color codes not w's friend
		fmt.Printf("[%s] %s\n", m.Lnc.Shortname, message)
	}
}

// MAND - mandatory message
func (m *MessageMaker) MAND(s string) { m.Emit(s, MSGMAND) }

// CRIT - critical message
func (m *MessageMaker) CRIT(s string) { m.Emit(s, MSGCRIT) }

// WARN - warning message
func (m *MessageMaker) WARN(s string) { m.Emit(s, MSGWARN) }

// NOTE - noteworthy message
func (m *MessageMaker) NOTE(s string) { m.Emit(s, MSGNOTE) }

// FYI - fyi message
func (m *MessageMaker) FYI(s string) { m.Emit(s, MSGFYI) }

// PEEK - peek message
func (m *MessageMaker) PEEK(s string) { m.Emit(s, MSGPEEK) }

// TMI - tmi message
func (m *MessageMaker) TMI(s string) { m.Emit(s, MSGTMI) }

// Color - color text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("C1", YELLOW1, "C2", CYAN2, "C3", BLUE2, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C0", RESET)
	}
	tagged = swap.Replace(tagged)
	return tagged
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD  = "\033[1m"
		ITAL  = "\033[3m"
		UNDER = "\033[4m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S0", RESET)
	}
	tagged = swap.Replace(tagged)
	return tagged
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// Error - just panic...
func (m *MessageMaker) Error(err error) {
	if err != nil {
		fmt.Printf(PANIC, YELLOW2, m.Lnc.Name, m.Lnc.Version, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// EF - report error and function
func (m *MessageMaker) EF(err error, fn string) {
	if err != nil {
		fmt.Printf(PANIC2, YELLOW2, m.Lnc.Name, m.Lnc.Version, RESET, CYAN2, fn, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// EC - report error and the caller recorded at construction time
func (m *MessageMaker) EC(err error) {
	var c string
	if m.Lnc.Caller != "" {
		c = m.Lnc.Caller
	}
	if err != nil {
		fmt.Printf(PANIC2, YELLOW2, m.Lnc.Name, m.Lnc.Version, RESET, CYAN2, c, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if !m.Win {
		os.Exit(e)
	} else {
		m.Emit(fmt.Sprintf(HANG, m.Lnc.Name, SUSP), -1)
		time.Sleep(SUSP * time.Second)
		os.Exit(e)
	}
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[C2: 4.021s][Δ: 1.338s] corpus assembled: 311 documents, 1000 words"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Now().Sub(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Now().Sub(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}
