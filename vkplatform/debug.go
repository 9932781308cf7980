package vkplatform

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

func (p *Platform) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning | ext_debug_utils.SeverityInfo,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    p.logDebug,
	}
}

func debugLevel(severity ext_debug_utils.DebugUtilsMessageSeverityFlags) logrus.Level {
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		return logrus.ErrorLevel
	case severity&ext_debug_utils.SeverityWarning != 0:
		return logrus.WarnLevel
	case severity&ext_debug_utils.SeverityInfo != 0:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}

func (p *Platform) logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	p.log.WithField("type", msgType.String()).Log(debugLevel(severity), data.Message)
	return false
}
