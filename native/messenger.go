package native

/*
#include "messenger.h"
*/
import "C"

import (
	"log/slog"
	"runtime/cgo"
	"unsafe"

	"github.com/celer/vkinit"
)

// newMessengerCreateInfo allocates a VkDebugUtilsMessengerCreateInfoEXT in C
// memory. The callback is reached through h, passed as pUserData.
func newMessengerCreateInfo(severities, types uint32, h cgo.Handle) unsafe.Pointer {
	return unsafe.Pointer(C.vkinitNewMessengerCreateInfo(C.uint32_t(severities), C.uint32_t(types), C.uintptr_t(h)))
}

func freeMessengerCreateInfo(info unsafe.Pointer) {
	C.vkinitFreeMessengerCreateInfo((*C.VkDebugUtilsMessengerCreateInfoEXT)(info))
}

//export goDebugUtilsCallback
func goDebugUtilsCallback(severity, types C.uint32_t, data *C.VkDebugUtilsMessengerCallbackDataEXT, userData unsafe.Pointer) (ret C.VkBool32) {
	ret = C.VK_FALSE
	defer func() {
		if r := recover(); r != nil {
			slog.Error("debug utils trampoline failed", "panic", r)
		}
	}()

	cb, ok := cgo.Handle(uintptr(userData)).Value().(*vkinit.DiagnosticCallback)
	if !ok || cb == nil {
		return
	}
	// The payload is owned by the driver; copy it before returning.
	var payload vkinit.CallbackData
	if data != nil {
		payload.Message = C.GoString(data.pMessage)
		payload.MessageIDName = C.GoString(data.pMessageIdName)
		payload.MessageIDNumber = int32(data.messageIdNumber)
	}
	cb.Invoke(uint32(severity), uint32(types), payload)
	return
}
