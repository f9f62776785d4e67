//    RentalTopics
//    Copyright: A Kranes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/akranes/rentaltopics/internal/mm"
)

// UpdateMessageMakerWithConfig - the other packages build their MessageMakers before the config
// has been read; push the launch settings into them
func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}
