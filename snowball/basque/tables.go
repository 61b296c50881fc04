/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package basque

import "github.com/hypermodeinc/snowstem/snowball"

// verbSuffixes are the aditzak endings, removed repeatedly.
var verbSuffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "idea", Substr: -1, Result: 1},
	{Str: "bidea", Substr: 0, Result: 1},
	{Str: "kidea", Substr: 0, Result: 1},
	{Str: "pidea", Substr: 0, Result: 1},
	{Str: "kundea", Substr: -1, Result: 1},
	{Str: "galea", Substr: -1, Result: 1},
	{Str: "tailea", Substr: -1, Result: 1},
	{Str: "tzailea", Substr: -1, Result: 1},
	{Str: "gunea", Substr: -1, Result: 1},
	{Str: "kunea", Substr: -1, Result: 1},
	{Str: "tzaga", Substr: -1, Result: 1},
	{Str: "gaia", Substr: -1, Result: 1},
	{Str: "aldia", Substr: -1, Result: 1},
	{Str: "taldia", Substr: 12, Result: 1},
	{Str: "karia", Substr: -1, Result: 1},
	{Str: "garria", Substr: -1, Result: 2},
	{Str: "karria", Substr: -1, Result: 1},
	{Str: "ka", Substr: -1, Result: 1},
	{Str: "tzaka", Substr: 17, Result: 1},
	{Str: "la", Substr: -1, Result: 1},
	{Str: "mena", Substr: -1, Result: 1},
	{Str: "pena", Substr: -1, Result: 1},
	{Str: "kina", Substr: -1, Result: 1},
	{Str: "ezina", Substr: -1, Result: 1},
	{Str: "tezina", Substr: 23, Result: 1},
	{Str: "kuna", Substr: -1, Result: 1},
	{Str: "tuna", Substr: -1, Result: 1},
	{Str: "kizuna", Substr: -1, Result: 1},
	{Str: "era", Substr: -1, Result: 1},
	{Str: "bera", Substr: 28, Result: 1},
	{Str: "arabera", Substr: 29, Result: -1},
	{Str: "kera", Substr: 28, Result: 1},
	{Str: "pera", Substr: 28, Result: 1},
	{Str: "orra", Substr: -1, Result: 1},
	{Str: "korra", Substr: 33, Result: 1},
	{Str: "dura", Substr: -1, Result: 1},
	{Str: "gura", Substr: -1, Result: 1},
	{Str: "kura", Substr: -1, Result: 1},
	{Str: "tura", Substr: -1, Result: 1},
	{Str: "eta", Substr: -1, Result: 1},
	{Str: "keta", Substr: 39, Result: 1},
	{Str: "gailua", Substr: -1, Result: 1},
	{Str: "eza", Substr: -1, Result: 1},
	{Str: "erreza", Substr: 42, Result: 1},
	{Str: "tza", Substr: -1, Result: 2},
	{Str: "gaitza", Substr: 44, Result: 1},
	{Str: "kaitza", Substr: 44, Result: 1},
	{Str: "kuntza", Substr: 44, Result: 1},
	{Str: "ide", Substr: -1, Result: 1},
	{Str: "bide", Substr: 48, Result: 1},
	{Str: "kide", Substr: 48, Result: 1},
	{Str: "pide", Substr: 48, Result: 1},
	{Str: "kunde", Substr: -1, Result: 1},
	{Str: "tzake", Substr: -1, Result: 1},
	{Str: "tzeke", Substr: -1, Result: 1},
	{Str: "le", Substr: -1, Result: 1},
	{Str: "gale", Substr: 55, Result: 1},
	{Str: "taile", Substr: 55, Result: 1},
	{Str: "tzaile", Substr: 55, Result: 1},
	{Str: "gune", Substr: -1, Result: 1},
	{Str: "kune", Substr: -1, Result: 1},
	{Str: "tze", Substr: -1, Result: 1},
	{Str: "atze", Substr: 61, Result: 1},
	{Str: "gai", Substr: -1, Result: 1},
	{Str: "aldi", Substr: -1, Result: 1},
	{Str: "taldi", Substr: 64, Result: 1},
	{Str: "ki", Substr: -1, Result: 1},
	{Str: "ari", Substr: -1, Result: 1},
	{Str: "kari", Substr: 67, Result: 1},
	{Str: "lari", Substr: 67, Result: 1},
	{Str: "tari", Substr: 67, Result: 1},
	{Str: "etari", Substr: 70, Result: 1},
	{Str: "garri", Substr: -1, Result: 2},
	{Str: "karri", Substr: -1, Result: 1},
	{Str: "arazi", Substr: -1, Result: 1},
	{Str: "tarazi", Substr: 74, Result: 1},
	{Str: "an", Substr: -1, Result: 1},
	{Str: "ean", Substr: 76, Result: 1},
	{Str: "rean", Substr: 77, Result: 1},
	{Str: "kan", Substr: 76, Result: 1},
	{Str: "etan", Substr: 76, Result: 1},
	{Str: "atseden", Substr: -1, Result: -1},
	{Str: "men", Substr: -1, Result: 1},
	{Str: "pen", Substr: -1, Result: 1},
	{Str: "kin", Substr: -1, Result: 1},
	{Str: "rekin", Substr: 84, Result: 1},
	{Str: "ezin", Substr: -1, Result: 1},
	{Str: "tezin", Substr: 86, Result: 1},
	{Str: "tun", Substr: -1, Result: 1},
	{Str: "kizun", Substr: -1, Result: 1},
	{Str: "go", Substr: -1, Result: 1},
	{Str: "ago", Substr: 90, Result: 1},
	{Str: "tio", Substr: -1, Result: 1},
	{Str: "dako", Substr: -1, Result: 1},
	{Str: "or", Substr: -1, Result: 1},
	{Str: "kor", Substr: 94, Result: 1},
	{Str: "tzat", Substr: -1, Result: 1},
	{Str: "du", Substr: -1, Result: 1},
	{Str: "gailu", Substr: -1, Result: 1},
	{Str: "tu", Substr: -1, Result: 1},
	{Str: "atu", Substr: 99, Result: 1},
	{Str: "aldatu", Substr: 100, Result: 1},
	{Str: "tatu", Substr: 100, Result: 1},
	{Str: "baditu", Substr: 99, Result: -1},
	{Str: "ez", Substr: -1, Result: 1},
	{Str: "errez", Substr: 104, Result: 1},
	{Str: "tzez", Substr: 104, Result: 1},
	{Str: "gaitz", Substr: -1, Result: 1},
	{Str: "kaitz", Substr: -1, Result: 1},
})

// nounSuffixes are the izenak endings, removed repeatedly after the verb endings.
var nounSuffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "ada", Substr: -1, Result: 1},
	{Str: "kada", Substr: 0, Result: 1},
	{Str: "anda", Substr: -1, Result: 1},
	{Str: "denda", Substr: -1, Result: 1},
	{Str: "gabea", Substr: -1, Result: 1},
	{Str: "kabea", Substr: -1, Result: 1},
	{Str: "aldea", Substr: -1, Result: 1},
	{Str: "kaldea", Substr: 6, Result: 1},
	{Str: "taldea", Substr: 6, Result: 1},
	{Str: "ordea", Substr: -1, Result: 1},
	{Str: "zalea", Substr: -1, Result: 1},
	{Str: "tzalea", Substr: 10, Result: 1},
	{Str: "gilea", Substr: -1, Result: 1},
	{Str: "emea", Substr: -1, Result: 1},
	{Str: "kumea", Substr: -1, Result: 1},
	{Str: "nea", Substr: -1, Result: 1},
	{Str: "enea", Substr: 15, Result: 1},
	{Str: "zionea", Substr: 15, Result: 1},
	{Str: "unea", Substr: 15, Result: 1},
	{Str: "gunea", Substr: 18, Result: 1},
	{Str: "pea", Substr: -1, Result: 1},
	{Str: "aurrea", Substr: -1, Result: 1},
	{Str: "tea", Substr: -1, Result: 1},
	{Str: "kotea", Substr: 22, Result: 1},
	{Str: "artea", Substr: 22, Result: 1},
	{Str: "ostea", Substr: 22, Result: 1},
	{Str: "etxea", Substr: -1, Result: 1},
	{Str: "ga", Substr: -1, Result: 1},
	{Str: "anga", Substr: 27, Result: 1},
	{Str: "gaia", Substr: -1, Result: 1},
	{Str: "aldia", Substr: -1, Result: 1},
	{Str: "taldia", Substr: 30, Result: 1},
	{Str: "handia", Substr: -1, Result: 1},
	{Str: "mendia", Substr: -1, Result: 1},
	{Str: "geia", Substr: -1, Result: 1},
	{Str: "egia", Substr: -1, Result: 1},
	{Str: "degia", Substr: 35, Result: 1},
	{Str: "tegia", Substr: 35, Result: 1},
	{Str: "nahia", Substr: -1, Result: 1},
	{Str: "ohia", Substr: -1, Result: 1},
	{Str: "kia", Substr: -1, Result: 1},
	{Str: "tokia", Substr: 40, Result: 1},
	{Str: "oia", Substr: -1, Result: 1},
	{Str: "koia", Substr: 42, Result: 1},
	{Str: "aria", Substr: -1, Result: 1},
	{Str: "karia", Substr: 44, Result: 1},
	{Str: "laria", Substr: 44, Result: 1},
	{Str: "taria", Substr: 44, Result: 1},
	{Str: "eria", Substr: -1, Result: 1},
	{Str: "keria", Substr: 48, Result: 1},
	{Str: "teria", Substr: 48, Result: 1},
	{Str: "garria", Substr: -1, Result: 2},
	{Str: "larria", Substr: -1, Result: 1},
	{Str: "kirria", Substr: -1, Result: 1},
	{Str: "duria", Substr: -1, Result: 1},
	{Str: "asia", Substr: -1, Result: 1},
	{Str: "tia", Substr: -1, Result: 1},
	{Str: "ezia", Substr: -1, Result: 1},
	{Str: "bizia", Substr: -1, Result: 1},
	{Str: "ontzia", Substr: -1, Result: 1},
	{Str: "ka", Substr: -1, Result: 1},
	{Str: "joka", Substr: 60, Result: 3},
	{Str: "aurka", Substr: 60, Result: -1},
	{Str: "ska", Substr: 60, Result: 1},
	{Str: "xka", Substr: 60, Result: 1},
	{Str: "zka", Substr: 60, Result: 1},
	{Str: "gibela", Substr: -1, Result: 1},
	{Str: "gela", Substr: -1, Result: 1},
	{Str: "kaila", Substr: -1, Result: 1},
	{Str: "skila", Substr: -1, Result: 1},
	{Str: "tila", Substr: -1, Result: 1},
	{Str: "ola", Substr: -1, Result: 1},
	{Str: "na", Substr: -1, Result: 1},
	{Str: "kana", Substr: 72, Result: 1},
	{Str: "ena", Substr: 72, Result: 1},
	{Str: "garrena", Substr: 74, Result: 1},
	{Str: "gerrena", Substr: 74, Result: 1},
	{Str: "urrena", Substr: 74, Result: 1},
	{Str: "zaina", Substr: 72, Result: 1},
	{Str: "tzaina", Substr: 78, Result: 1},
	{Str: "kina", Substr: 72, Result: 1},
	{Str: "mina", Substr: 72, Result: 1},
	{Str: "garna", Substr: 72, Result: 1},
	{Str: "una", Substr: 72, Result: 1},
	{Str: "duna", Substr: 83, Result: 1},
	{Str: "asuna", Substr: 83, Result: 1},
	{Str: "tasuna", Substr: 85, Result: 1},
	{Str: "ondoa", Substr: -1, Result: 1},
	{Str: "kondoa", Substr: 87, Result: 1},
	{Str: "ngoa", Substr: -1, Result: 1},
	{Str: "zioa", Substr: -1, Result: 1},
	{Str: "koa", Substr: -1, Result: 1},
	{Str: "takoa", Substr: 91, Result: 1},
	{Str: "zkoa", Substr: 91, Result: 1},
	{Str: "noa", Substr: -1, Result: 1},
	{Str: "zinoa", Substr: 94, Result: 1},
	{Str: "aroa", Substr: -1, Result: 1},
	{Str: "taroa", Substr: 96, Result: 1},
	{Str: "zaroa", Substr: 96, Result: 1},
	{Str: "eroa", Substr: -1, Result: 1},
	{Str: "oroa", Substr: -1, Result: 1},
	{Str: "osoa", Substr: -1, Result: 1},
	{Str: "toa", Substr: -1, Result: 1},
	{Str: "ttoa", Substr: 102, Result: 1},
	{Str: "ztoa", Substr: 102, Result: 1},
	{Str: "txoa", Substr: -1, Result: 1},
	{Str: "tzoa", Substr: -1, Result: 1},
	{Str: "ñoa", Substr: -1, Result: 1},
	{Str: "ra", Substr: -1, Result: 1},
	{Str: "ara", Substr: 108, Result: 1},
	{Str: "dara", Substr: 109, Result: 1},
	{Str: "liara", Substr: 109, Result: 1},
	{Str: "tiara", Substr: 109, Result: 1},
	{Str: "tara", Substr: 109, Result: 1},
	{Str: "etara", Substr: 113, Result: 1},
	{Str: "tzara", Substr: 109, Result: 1},
	{Str: "bera", Substr: 108, Result: 1},
	{Str: "kera", Substr: 108, Result: 1},
	{Str: "pera", Substr: 108, Result: 1},
	{Str: "ora", Substr: 108, Result: 2},
	{Str: "tzarra", Substr: 108, Result: 1},
	{Str: "korra", Substr: 108, Result: 1},
	{Str: "tra", Substr: 108, Result: 1},
	{Str: "sa", Substr: -1, Result: 1},
	{Str: "osa", Substr: 123, Result: 1},
	{Str: "ta", Substr: -1, Result: 1},
	{Str: "eta", Substr: 125, Result: 1},
	{Str: "keta", Substr: 126, Result: 1},
	{Str: "sta", Substr: 125, Result: 1},
	{Str: "dua", Substr: -1, Result: 1},
	{Str: "mendua", Substr: 129, Result: 1},
	{Str: "ordua", Substr: 129, Result: 1},
	{Str: "lekua", Substr: -1, Result: 1},
	{Str: "burua", Substr: -1, Result: 1},
	{Str: "durua", Substr: -1, Result: 1},
	{Str: "tsua", Substr: -1, Result: 1},
	{Str: "tua", Substr: -1, Result: 1},
	{Str: "mentua", Substr: 136, Result: 1},
	{Str: "estua", Substr: 136, Result: 1},
	{Str: "txua", Substr: -1, Result: 1},
	{Str: "zua", Substr: -1, Result: 1},
	{Str: "tzua", Substr: 140, Result: 1},
	{Str: "za", Substr: -1, Result: 1},
	{Str: "eza", Substr: 142, Result: 1},
	{Str: "eroza", Substr: 142, Result: 1},
	{Str: "tza", Substr: 142, Result: 2},
	{Str: "koitza", Substr: 145, Result: 1},
	{Str: "antza", Substr: 145, Result: 1},
	{Str: "gintza", Substr: 145, Result: 1},
	{Str: "kintza", Substr: 145, Result: 1},
	{Str: "kuntza", Substr: 145, Result: 1},
	{Str: "gabe", Substr: -1, Result: 1},
	{Str: "kabe", Substr: -1, Result: 1},
	{Str: "kide", Substr: -1, Result: 1},
	{Str: "alde", Substr: -1, Result: 1},
	{Str: "kalde", Substr: 154, Result: 1},
	{Str: "talde", Substr: 154, Result: 1},
	{Str: "orde", Substr: -1, Result: 1},
	{Str: "ge", Substr: -1, Result: 1},
	{Str: "zale", Substr: -1, Result: 1},
	{Str: "tzale", Substr: 159, Result: 1},
	{Str: "gile", Substr: -1, Result: 1},
	{Str: "eme", Substr: -1, Result: 1},
	{Str: "kume", Substr: -1, Result: 1},
	{Str: "ne", Substr: -1, Result: 1},
	{Str: "zione", Substr: 164, Result: 1},
	{Str: "une", Substr: 164, Result: 1},
	{Str: "gune", Substr: 166, Result: 1},
	{Str: "pe", Substr: -1, Result: 1},
	{Str: "aurre", Substr: -1, Result: 1},
	{Str: "te", Substr: -1, Result: 1},
	{Str: "kote", Substr: 170, Result: 1},
	{Str: "arte", Substr: 170, Result: 1},
	{Str: "oste", Substr: 170, Result: 1},
	{Str: "etxe", Substr: -1, Result: 1},
	{Str: "gai", Substr: -1, Result: 1},
	{Str: "di", Substr: -1, Result: 1},
	{Str: "aldi", Substr: 176, Result: 1},
	{Str: "taldi", Substr: 177, Result: 1},
	{Str: "geldi", Substr: 176, Result: -1},
	{Str: "handi", Substr: 176, Result: 1},
	{Str: "mendi", Substr: 176, Result: 1},
	{Str: "gei", Substr: -1, Result: 1},
	{Str: "egi", Substr: -1, Result: 1},
	{Str: "degi", Substr: 183, Result: 1},
	{Str: "tegi", Substr: 183, Result: 1},
	{Str: "nahi", Substr: -1, Result: 1},
	{Str: "ohi", Substr: -1, Result: 1},
	{Str: "ki", Substr: -1, Result: 1},
	{Str: "toki", Substr: 188, Result: 1},
	{Str: "oi", Substr: -1, Result: 1},
	{Str: "goi", Substr: 190, Result: 1},
	{Str: "koi", Substr: 190, Result: 1},
	{Str: "ari", Substr: -1, Result: 1},
	{Str: "kari", Substr: 193, Result: 1},
	{Str: "lari", Substr: 193, Result: 1},
	{Str: "tari", Substr: 193, Result: 1},
	{Str: "garri", Substr: -1, Result: 2},
	{Str: "larri", Substr: -1, Result: 1},
	{Str: "kirri", Substr: -1, Result: 1},
	{Str: "duri", Substr: -1, Result: 1},
	{Str: "asi", Substr: -1, Result: 1},
	{Str: "ti", Substr: -1, Result: 1},
	{Str: "ontzi", Substr: -1, Result: 1},
	{Str: "ñi", Substr: -1, Result: 1},
	{Str: "ak", Substr: -1, Result: 1},
	{Str: "ek", Substr: -1, Result: 1},
	{Str: "tarik", Substr: -1, Result: 1},
	{Str: "gibel", Substr: -1, Result: 1},
	{Str: "ail", Substr: -1, Result: 1},
	{Str: "kail", Substr: 209, Result: 1},
	{Str: "kan", Substr: -1, Result: 1},
	{Str: "tan", Substr: -1, Result: 1},
	{Str: "etan", Substr: 212, Result: 1},
	{Str: "en", Substr: -1, Result: 4},
	{Str: "ren", Substr: 214, Result: 2},
	{Str: "garren", Substr: 215, Result: 1},
	{Str: "gerren", Substr: 215, Result: 1},
	{Str: "urren", Substr: 215, Result: 1},
	{Str: "ten", Substr: 214, Result: 4},
	{Str: "tzen", Substr: 214, Result: 4},
	{Str: "zain", Substr: -1, Result: 1},
	{Str: "tzain", Substr: 221, Result: 1},
	{Str: "kin", Substr: -1, Result: 1},
	{Str: "min", Substr: -1, Result: 1},
	{Str: "dun", Substr: -1, Result: 1},
	{Str: "asun", Substr: -1, Result: 1},
	{Str: "tasun", Substr: 226, Result: 1},
	{Str: "aizun", Substr: -1, Result: 1},
	{Str: "ondo", Substr: -1, Result: 1},
	{Str: "kondo", Substr: 229, Result: 1},
	{Str: "go", Substr: -1, Result: 1},
	{Str: "ngo", Substr: 231, Result: 1},
	{Str: "zio", Substr: -1, Result: 1},
	{Str: "ko", Substr: -1, Result: 1},
	{Str: "trako", Substr: 234, Result: 5},
	{Str: "tako", Substr: 234, Result: 1},
	{Str: "etako", Substr: 236, Result: 1},
	{Str: "eko", Substr: 234, Result: 1},
	{Str: "tariko", Substr: 234, Result: 1},
	{Str: "sko", Substr: 234, Result: 1},
	{Str: "tuko", Substr: 234, Result: 1},
	{Str: "minutuko", Substr: 241, Result: 6},
	{Str: "zko", Substr: 234, Result: 1},
	{Str: "no", Substr: -1, Result: 1},
	{Str: "zino", Substr: 244, Result: 1},
	{Str: "ro", Substr: -1, Result: 1},
	{Str: "aro", Substr: 246, Result: 1},
	{Str: "igaro", Substr: 247, Result: -1},
	{Str: "taro", Substr: 247, Result: 1},
	{Str: "zaro", Substr: 247, Result: 1},
	{Str: "ero", Substr: 246, Result: 1},
	{Str: "giro", Substr: 246, Result: 1},
	{Str: "oro", Substr: 246, Result: 1},
	{Str: "oso", Substr: -1, Result: 1},
	{Str: "to", Substr: -1, Result: 1},
	{Str: "tto", Substr: 255, Result: 1},
	{Str: "zto", Substr: 255, Result: 1},
	{Str: "txo", Substr: -1, Result: 1},
	{Str: "tzo", Substr: -1, Result: 1},
	{Str: "gintzo", Substr: 259, Result: 1},
	{Str: "ño", Substr: -1, Result: 1},
	{Str: "zp", Substr: -1, Result: 1},
	{Str: "ar", Substr: -1, Result: 1},
	{Str: "dar", Substr: 263, Result: 1},
	{Str: "behar", Substr: 263, Result: 1},
	{Str: "zehar", Substr: 263, Result: -1},
	{Str: "liar", Substr: 263, Result: 1},
	{Str: "tiar", Substr: 263, Result: 1},
	{Str: "tar", Substr: 263, Result: 1},
	{Str: "tzar", Substr: 263, Result: 1},
	{Str: "or", Substr: -1, Result: 2},
	{Str: "kor", Substr: 271, Result: 1},
	{Str: "os", Substr: -1, Result: 1},
	{Str: "ket", Substr: -1, Result: 1},
	{Str: "du", Substr: -1, Result: 1},
	{Str: "mendu", Substr: 275, Result: 1},
	{Str: "ordu", Substr: 275, Result: 1},
	{Str: "leku", Substr: -1, Result: 1},
	{Str: "buru", Substr: -1, Result: 2},
	{Str: "duru", Substr: -1, Result: 1},
	{Str: "tsu", Substr: -1, Result: 1},
	{Str: "tu", Substr: -1, Result: 1},
	{Str: "tatu", Substr: 282, Result: 4},
	{Str: "mentu", Substr: 282, Result: 1},
	{Str: "estu", Substr: 282, Result: 1},
	{Str: "txu", Substr: -1, Result: 1},
	{Str: "zu", Substr: -1, Result: 1},
	{Str: "tzu", Substr: 287, Result: 1},
	{Str: "gintzu", Substr: 288, Result: 1},
	{Str: "z", Substr: -1, Result: 1},
	{Str: "ez", Substr: 290, Result: 1},
	{Str: "eroz", Substr: 290, Result: 1},
	{Str: "tz", Substr: 290, Result: 1},
	{Str: "koitz", Substr: 293, Result: 1},
})

// adjectiveSuffixes are the adjetiboak endings, removed at most once.
var adjectiveSuffixes = snowball.NewAmongB([]snowball.AmongEntry{
	{Str: "zlea", Substr: -1, Result: 2},
	{Str: "keria", Substr: -1, Result: 1},
	{Str: "la", Substr: -1, Result: 1},
	{Str: "era", Substr: -1, Result: 1},
	{Str: "dade", Substr: -1, Result: 1},
	{Str: "tade", Substr: -1, Result: 1},
	{Str: "date", Substr: -1, Result: 1},
	{Str: "tate", Substr: -1, Result: 1},
	{Str: "gi", Substr: -1, Result: 1},
	{Str: "ki", Substr: -1, Result: 1},
	{Str: "ik", Substr: -1, Result: 1},
	{Str: "lanik", Substr: 10, Result: 1},
	{Str: "rik", Substr: 10, Result: 1},
	{Str: "larik", Substr: 12, Result: 1},
	{Str: "ztik", Substr: 10, Result: 1},
	{Str: "go", Substr: -1, Result: 1},
	{Str: "ro", Substr: -1, Result: 1},
	{Str: "ero", Substr: 16, Result: 1},
	{Str: "to", Substr: -1, Result: 1},
})
